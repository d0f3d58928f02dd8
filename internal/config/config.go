package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/tododb?sslmode=disable"` // креденшелы только через окружение
	JWTSecret string `env:"JWT_SECRET,required"` // секрет только из окружения, в коде его быть не должно
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
	WorkerCount int `env:"WORKER_COUNT" envDefault:"2"`
	KeyRetention time.Duration `env:"IDEMPOTENCY_KEY_RETENTION" envDefault:"24h"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
