package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken     string `env:"BOT_TOKEN,required"`
	GoogleAPIKey string `env:"GOOGLE_API_KEY,required"`

	// Search behavior
	NearbyRadiusMeters int `env:"NEARBY_RADIUS_METERS" envDefault:"3000"`

	// Session lifecycle
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
