package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"calendaruser"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"calendarpassword"`
	DBName     string `env:"DB_NAME" envDefault:"calendar_app"`

	// JWTSecret signs identity tokens; the default exists for local
	// development only and must be overridden in any real deployment.
	JWTSecret string        `env:"JWT_SECRET" envDefault:"default-secret-key-change-me"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"168h"`

	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	Port    string `env:"PORT" envDefault:"8080"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
