package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds every runtime setting the server needs. Values come from the
// environment (godotenv loads .env into it first); secrets are required so
// the process refuses to boot without them.
type Config struct {
	Env          string `env:"ENV" env-default:"dev"`
	HTTPAddr     string `env:"HTTP_ADDR" env-default:":8080"`
	ClientOrigin string `env:"CLIENT_ORIGIN" env-default:"http://localhost:3000"`

	DatabaseDSN string `env:"DATABASE_DSN" env-default:"host=localhost user=postgres password=password dbname=rmatch port=5432 sslmode=disable"`

	JWTSecret string `env:"JWT_SECRET" env-required:"true"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`

	SMTPAddr string `env:"SMTP_ADDR"`
	SMTPFrom string `env:"SMTP_FROM" env-default:"no-reply@rmatch.app"`

	// Base URL used in verification links sent to users.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
}

// MustLoad reads the config from the environment or exits.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
