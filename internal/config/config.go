package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address             string        `env:"RUN_ADDRESS"           envDefault:"localhost:8080"`
	AuthURL             string        `env:"AUTH_SERVICE_URL"      envDefault:"http://localhost:9999"`
	AuthAnonKey         string        `env:"AUTH_ANON_KEY"         envDefault:""`
	AuthJWTSecret       string        `env:"AUTH_JWT_SECRET"       envDefault:"super-secret-jwt-token"`
	AdminKeyHash        string        `env:"ADMIN_KEY_HASH"        envDefault:""`
	SessionPollInterval time.Duration `env:"SESSION_POLL_INTERVAL" envDefault:"30s"`
	LogLvl              string        `env:"LOG_LVL"               envDefault:"info"`
}

func New() *Config {
	godotenv.Load()

	cfg := &Config{}
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.AuthURL, "auth", cfg.AuthURL, "auth service base URL")
	flag.StringVar(&cfg.AdminKeyHash, "k", cfg.AdminKeyHash, "bcrypt hash of the admin API key")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.AuthURL, "http://") && !strings.HasPrefix(cfg.AuthURL, "https://") {
		cfg.AuthURL = "http://" + cfg.AuthURL
	}

	return cfg
}
