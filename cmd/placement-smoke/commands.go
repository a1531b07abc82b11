package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	placementclient "placement-gateway/lib/placement-client"
	"placement-gateway/lib/smoke"
	baseworker "placement-gateway/lib/utils/base-worker"
	placementapimodels "placement-gateway/models/api/placement"
)

func runSmoke(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Checking placement backend at %s\n\n", client.Host())
	report := smoke.NewRunner(client, smoke.Options{SkipAI: skipAI, KeepData: keepData}).Run(cmd.Context())
	report.Print(cmd.OutOrStdout())
	if !report.OK() {
		return errors.Errorf("проверок не пройдено: %d из %d", report.Failed, report.Total)
	}
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := placementclient.WithInitiator(cmd.Context(), "cli: seed")
	resp, err := placementclient.Decode[placementapimodels.SeedResponse](client.InterviewQuestions.Seed(ctx))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	ctx := placementclient.WithInitiator(cmd.Context(), "cli: info")
	raw, err := client.Info(ctx)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return errors.Wrap(err, "ошибка форматирования ответа")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	if interval <= 0 {
		return errors.Errorf("интервал наблюдения должен быть положительным, получено %v", interval)
	}
	client, err := newClient()
	if err != nil {
		return err
	}
	worker := baseworker.NewInstance("placement-smoke", 0, interval)
	worker.Run(cmd.Context(), func(ctx context.Context) {
		report := smoke.NewRunner(client, smoke.Options{SkipAI: skipAI, KeepData: keepData}).Run(ctx)
		logger := worker.GetLogger().
			WithField("total", report.Total).
			WithField("failed", report.Failed)
		if report.OK() {
			logger.Info("все проверки пройдены")
			return
		}
		for _, check := range report.FailedChecks() {
			logger.WithField("check", check.Name).Warn(check.Message)
		}
	})
	log.Info("наблюдение остановлено")
	return nil
}
