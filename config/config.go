package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gotify/configor"
	"github.com/pkg/errors"
)

// Conf is read once at start-up and never modified afterwards.
var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr  string `default:"" env:"APP_HOST"`
		Port        int    `default:"8080" env:"APP_PORT" validate:"min=1,max=65535"`
		BodyLimitMB int64  `default:"10" env:"APP_BODY_LIMIT_MB" validate:"min=1"`
		LogLevel    string `default:"info" env:"APP_LOG_LEVEL" validate:"oneof=debug info warn error"`
	}
	Backend struct {
		Host      string        `default:"http://localhost:8001/api" env:"PLACEMENT_API_URL" validate:"required,url"`
		UserAgent string        `default:"PlacementGateway/1.0" env:"PLACEMENT_API_USER_AGENT"`
		Timeout   time.Duration `default:"0s" env:"PLACEMENT_API_TIMEOUT"`
	}
	Audit struct {
		Enabled *bool `default:"false" env:"AUDIT_ENABLED"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"placement-gateway" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"placement-reports" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Export struct {
		PdfFontPath     string `default:"" env:"PDF_FONT_PATH"`
		PdfBoldFontPath string `default:"" env:"PDF_BOLD_FONT_PATH"`
	}
	ErrNotify struct {
		Addr string `default:"" env:"ERR_NOTIFY_ADDR" validate:"omitempty,url"`
	}
	Swagger struct {
		Path     string `default:"/swagger" env:"SWAGGER_PATH"`
		FilePath string `default:"./docs/swagger.json" env:"SWAGGER_FILE_PATH"`
	}
}

func (c Configuration) AuditEnabled() bool {
	return c.Audit.Enabled != nil && *c.Audit.Enabled
}

func (c Configuration) S3Enabled() bool {
	return c.S3.Endpoint != ""
}

func (c Configuration) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "некорректная конфигурация")
	}
	return nil
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf, err := Load(configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// Load reads the given files (missing files are skipped) and environment overrides.
func Load(files ...string) (*Configuration, error) {
	conf := new(Configuration)
	if err := configor.New(&configor.Config{}).Load(conf, files...); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения конфигурации")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
