package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string        `env:"ENV" env-default:"dev"`
	Port      string        `env:"PORT" env-default:"8080"`
	JWTSecret string        `env:"JWT_SECRET" env-default:"access"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"1h"`
}

// Load reads configuration from the environment. Every field has a default
// so the server runs with no environment at all. JWT_SECRET defaults to the
// fixed shared secret used by both the token issuer and the verifier; that
// secret (like plaintext credential storage) is a known weakness of this
// service, kept because clients depend on the exact behavior.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return &cfg, nil
}
