package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DataFile is the JSON document holding the whole collection.
	DataFile string `env:"DATA_FILE, default=data/dinosaurs.json"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`

	Admin AdminConfig
}

// AdminConfig describes the single administrator account. Either the bcrypt
// hash or the plaintext password must be set; when only the plaintext is
// given it is hashed once at startup.
type AdminConfig struct {
	Username     string `env:"ADMIN_USERNAME, default=adminDino"`
	PasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	Password     string `env:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
