package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		MongoURL        string        `env:"MONGO_URL" envDefault:"mongodb://localhost:27017/" validate:"required"`
		Database        string        `env:"DB_NAME" envDefault:"archviz_portfolio" validate:"required"`
		Port            string        `env:"PORT" envDefault:"8001" validate:"required,numeric"`
		StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
		LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
		Seed            bool          `env:"SEED" envDefault:"true"`
		Pprof           bool          `env:"PPROF" envDefault:"false"`
		CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:","`

		Auth  AuthConfig  `envPrefix:"AUTH_"`
		Media MediaConfig `envPrefix:"MEDIA_"`
	}

	// AuthConfig enables the bearer-token guard when Secret is set.
	AuthConfig struct {
		Secret            string        `env:"SECRET"`
		AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
		TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"12h" validate:"gt=0"`
	}

	// MediaConfig enables image uploads when Bucket is set.
	MediaConfig struct {
		Bucket  string `env:"BUCKET"`
		Region  string `env:"REGION" envDefault:"us-east-1"`
		BaseURL string `env:"BASE_URL" validate:"omitempty,url"`
	}
)

func (a AuthConfig) Enabled() bool { return a.Secret != "" }

func (m MediaConfig) Enabled() bool { return m.Bucket != "" }

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment alone.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
