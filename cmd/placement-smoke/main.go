// Command placement-smoke checks a running placement backend end to end.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"placement-gateway/config"
	"placement-gateway/initializers"
	placementclient "placement-gateway/lib/placement-client"
)

const defaultWatchInterval = 5 * time.Minute

var (
	baseURL  string
	timeout  time.Duration
	skipAI   bool
	keepData bool
	interval time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "placement-smoke",
	Short:         "End-to-end checks for the placement backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.Load("config.yml")
		if err != nil {
			return err
		}
		config.Conf = conf
		initializers.InitLogger()
		if baseURL == "" {
			baseURL = conf.Backend.Host
		}
		return nil
	},
}

// runCmd runs the full scenario once
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every check once and print the report",
	Long: `Creates a student, a job, an application and a test in the backend,
exercises every endpoint against them and removes the created records.

Exits with a non-zero code when any check fails.`,
	RunE: runSmoke,
}

// seedCmd loads the sample interview questions
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the backend with sample interview questions",
	RunE:  runSeed,
}

// infoCmd prints the backend root document
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show backend name, version and endpoint map",
	RunE:  runInfo,
}

// watchCmd repeats the scenario on a schedule
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the checks periodically until interrupted",
	RunE:  runWatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend address including /api (default: PLACEMENT_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Per-request timeout")

	for _, cmd := range []*cobra.Command{runCmd, watchCmd} {
		cmd.Flags().BoolVar(&skipAI, "skip-ai", false, "Skip the AI endpoints")
		cmd.Flags().BoolVar(&keepData, "keep-data", false, "Do not delete the created records")
	}
	watchCmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "Pause between runs")

	rootCmd.AddCommand(runCmd, seedCmd, infoCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("placement-smoke завершился с ошибкой")
		stop()
		os.Exit(1)
	}
}

func newClient() (*placementclient.Client, error) {
	client, err := placementclient.New(baseURL,
		placementclient.WithTimeout(timeout),
		placementclient.WithUserAgent(config.Conf.Backend.UserAgent),
	)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка создания клиента placement backend")
	}
	return client, nil
}
