package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// DB
	DatabaseURL       string        `envconfig:"DATABASE_URL" default:"host=localhost user=user password=password dbname=booking_db port=5433 sslmode=disable"`
	ConnectRetries    int           `envconfig:"DB_CONNECT_RETRIES" default:"5"`
	ConnectRetryDelay time.Duration `envconfig:"DB_CONNECT_RETRY_DELAY" default:"5s"`
	// Network
	Port string `envconfig:"PORT" default:"8080"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
