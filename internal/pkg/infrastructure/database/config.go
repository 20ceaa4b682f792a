package database

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Host         string        `env:"HOST" envDefault:"localhost"`
	Port         string        `env:"PORT" envDefault:"5432"`
	User         string        `env:"USER"`
	Password     string        `env:"PASSWORD"`
	DBName       string        `env:"DBNAME" envDefault:"postharvest"`
	SSLMode      string        `env:"SSLMODE" envDefault:"disable"`
	QueryTimeout time.Duration `env:"QUERY_TIMEOUT" envDefault:"5s"`
}

// LoadConfiguration reads POSTGRES_* variables from the environment
func LoadConfiguration() (Config, error) {
	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "POSTGRES_"}); err != nil {
		return cfg, fmt.Errorf("failed to parse database configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) ConnStr() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}
