package config

import (
	"context"
	"log/slog"
	"os"
	"reflect"

	"github.com/mcuadros/go-defaults"
	"github.com/naoina/toml"
	"github.com/sethvargo/go-envconfig"
)

var configFile = ""

type Config struct {
	InstanceID string `env:"REPORT_NOTIFIER_INSTANCE_ID"`

	Notifier struct {
		Port int `env:"REPORT_NOTIFIER_PORT" default:"8096"`
		// leave empty to disable api key check
		APIToken string `env:"REPORT_NOTIFIER_API_TOKEN" default:""`
	}

	Slack struct {
		// static bot token
		Token string `env:"REPORT_NOTIFIER_SLACK_API_TOKEN" default:""`
		// file holding the bot token, re-read on every send. Takes priority over Token.
		TokenFile  string `env:"REPORT_NOTIFIER_SLACK_API_TOKEN_FILE" default:""`
		Proxy      string `env:"REPORT_NOTIFIER_SLACK_PROXY" default:""`
		TimeoutSEC int    `env:"REPORT_NOTIFIER_SLACK_TIMEOUT_SEC" default:"30"`
	}

	S3 struct {
		AccessKeyID     string `env:"REPORT_NOTIFIER_S3_ACCESS_KEY_ID"`
		AccessKeySecret string `env:"REPORT_NOTIFIER_S3_ACCESS_KEY_SECRET"`
		Region          string `env:"REPORT_NOTIFIER_S3_REGION" default:"us-east-1"`
		Endpoint        string `env:"REPORT_NOTIFIER_S3_ENDPOINT" default:"s3.amazonaws.com"`
		Bucket          string `env:"REPORT_NOTIFIER_S3_BUCKET" default:"superset-reports"`
		EnableSSL       bool   `env:"REPORT_NOTIFIER_S3_ENABLE_SSL" default:"true"`
		BucketLookup    string `env:"REPORT_NOTIFIER_S3_BUCKET_LOOKUP" default:"auto"`
		KeyPrefix       string `env:"REPORT_NOTIFIER_S3_KEY_PREFIX" default:""`
		// lifetime of the presigned screenshot url
		PresignExpireSEC int `env:"REPORT_NOTIFIER_S3_PRESIGN_EXPIRE_SEC" default:"3600"`
	}

	Instrumentation struct {
		// grpc endpoint of the otel collector, e.g. http://otel-collector:4317. Empty disables tracing.
		OTLPEndpoint string `env:"REPORT_NOTIFIER_OTLP_ENDPOINT"`
		OTLPLogging  bool   `env:"REPORT_NOTIFIER_OTLP_LOGGING" default:"false"`
	}

	Webhook struct {
		// total POST attempts per relay, first try included
		MaxAttempts uint `env:"REPORT_NOTIFIER_WEBHOOK_MAX_ATTEMPTS" default:"6"`
		TimeoutSEC  int  `env:"REPORT_NOTIFIER_WEBHOOK_TIMEOUT_SEC" default:"10"`
		// optional bearer token sent to every relay
		AuthToken string `env:"REPORT_NOTIFIER_WEBHOOK_AUTH_TOKEN" default:""`
		UserAgent string `env:"REPORT_NOTIFIER_WEBHOOK_USER_AGENT" default:"report-notifier"`
	}
}

func SetConfigFile(file string) {
	configFile = file
}

func LoadConfig() (*Config, error) {
	defer slog.Debug("end load config")
	slog.Debug("start load config")
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	toml.DefaultConfig.MissingField = func(typ reflect.Type, key string) error {
		return nil
	}

	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		err = toml.NewDecoder(f).Decode(cfg)
		if err != nil {
			return nil, err
		}
	}

	// Environment always wins over the config file; fields missing from both keep their default tag value.
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:           cfg,
		DefaultOverwrite: true,
	})
	return cfg, err
}
