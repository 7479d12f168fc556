package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, sourced from environment variables.
type Config struct {
	// ListenAddr is the TCP address the protocol server binds.
	ListenAddr string `env:"LISTEN_ADDR, default=127.0.0.1:8080" validate:"hostname_port"`
	// OpsAddr serves /health and /metrics over HTTP.
	OpsAddr  string `env:"OPS_ADDR,  default=127.0.0.1:9090" validate:"hostname_port"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info" validate:"oneof=trace debug info warn error"`
	// MaxRequestBytes caps a single request read. One read = one request.
	MaxRequestBytes int `env:"MAX_REQUEST_BYTES, default=1024" validate:"gt=0"`
	// SeedUsers controls whether the startup seed accounts are created.
	SeedUsers bool `env:"SEED_USERS, default=true"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates the result.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
