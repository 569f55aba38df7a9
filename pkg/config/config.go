// Package config loads service configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Config is the full service configuration.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Log      LogConfig
}

// HTTPConfig controls the listening socket.
type HTTPConfig struct {
	BindAddress string `env:"BIND_ADDRESS, default=0.0.0.0" validate:"required"`
	Port        string `env:"PORT,         default=8080"    validate:"required"`
}

// DatabaseConfig controls the storage connection. DATABASE_URL, when set,
// takes precedence over the individual fields.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"DB_HOST, default=localhost" validate:"required"`
	Name     string `env:"DB_NAME, default=iot"       validate:"required"`
	User     string `env:"DB_USER, default=application"`
	Password string `env:"DB_PASSWORD"`
	SSLMode  string `env:"DB_SSLMODE, default=disable" validate:"oneof=disable require verify-ca verify-full"`
}

// LogConfig controls application logging.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info" validate:"oneof=debug info warn warning error"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load reads and validates configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DSN returns the connection string for the application database.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	dsn := fmt.Sprintf("host=%s dbname=%s sslmode=%s", d.Host, d.Name, d.SSLMode)
	if d.User != "" {
		dsn += " user=" + d.User
	}
	if d.Password != "" {
		dsn += " password=" + d.Password
	}
	return dsn
}

// MaintenanceDSN returns a connection string for the default postgres
// maintenance database, used by the one-time provisioning path before the
// application database exists.
func (d DatabaseConfig) MaintenanceDSN(adminUser string) string {
	return fmt.Sprintf("host=%s dbname=postgres user=%s sslmode=%s", d.Host, adminUser, d.SSLMode)
}
