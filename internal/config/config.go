package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Redis   RedisConfig
	Store   StoreConfig
	JWT     JWTConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// BackendConfig points at the hosted backend-as-a-service that owns
// auth, the database tables, and object storage.
type BackendConfig struct {
	URL          string        `env:"BACKEND_URL" envDefault:"http://localhost:54321"`
	AnonKey      string        `env:"BACKEND_ANON_KEY"`
	AvatarBucket string        `env:"BACKEND_AVATAR_BUCKET" envDefault:"avatars"`
	Timeout      time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// StoreConfig locates the durable local records that hold per-user
// client state (cart, balance, activity, reviews, theme).
type StoreConfig struct {
	DataDir string `env:"STORE_DATA_DIR" envDefault:"./data"`
}

// JWTConfig holds the secret the hosted service signs access tokens
// with, so the session middleware can validate them locally.
type JWTConfig struct {
	Secret string `env:"JWT_SECRET" envDefault:"super-secret-key"`
}

func Load() (*Config, error) {
	// .env is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
