package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	svcenv "github.com/diwise/service-chassis/pkg/infrastructure/env"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
)

type FlagType int
type FlagMap map[FlagType]string

const (
	listenAddress FlagType = iota
	servicePort

	policiesPath

	logFormat

	bootstrapSchema
)

func defaultFlags(ctx context.Context) FlagMap {
	return FlagMap{
		listenAddress: "",
		servicePort:   svcenv.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080"),

		policiesPath: svcenv.GetVariableOrDefault(ctx, "POLICIES_PATH", ""),

		logFormat: svcenv.GetVariableOrDefault(ctx, "LOG_FORMAT", "json"),

		bootstrapSchema: svcenv.GetVariableOrDefault(ctx, "BOOTSTRAP_SCHEMA", "false"),
	}
}

func parseExternalConfig(flags FlagMap, args []string) (FlagMap, error) {
	fs := flag.NewFlagSet("postharvest", flag.ContinueOnError)

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	fs.Func("listen", "address to listen on, all interfaces when empty", apply(listenAddress))
	fs.Func("port", "port to serve the api on (default "+flags[servicePort]+")", apply(servicePort))
	fs.Func("policies", "path to a rego file that replaces the built in authz policies", apply(policiesPath))
	fs.Func("logformat", "json or text (default "+flags[logFormat]+")", apply(logFormat))
	fs.BoolFunc("bootstrap", "create the database schema on startup", apply(bootstrapSchema))

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return flags, nil
}

// AppConfig holds the settings read from the environment
type AppConfig struct {
	SecretKey        string          `env:"SECRET_KEY,notEmpty"`
	TokenTTL         time.Duration   `env:"TOKEN_TTL" envDefault:"24h"`
	BcryptWorkFactor int             `env:"BCRYPT_WORK_FACTOR" envDefault:"12"`
	NotifierEndpoint string          `env:"NOTIFIER_ENDPOINT"`
	Database         database.Config `envPrefix:"POSTGRES_"`
}

func LoadAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
