// Package config loads the process configuration from environment variables,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv        string        `env:"APP_ENV" default:"development"`
	APIURL        string        `env:"API_URL"`
	ElectionID    string        `env:"ELECTION_ID"`
	ElectionStage string        `env:"ELECTION_STAGE"`
	MQTTBroker    string        `env:"MQTT_BROKER"`
	MQTTPort      int           `env:"MQTT_PORT"`
	MQTTTopic     string        `env:"MQTT_TOPIC"`
	PollInterval  time.Duration `env:"POLL_INTERVAL" default:"5m"`
	Threshold     float64       `env:"THRESHOLD_PERCENT" default:"5"`
	DisplayTZ     string        `env:"DISPLAY_TIMEZONE" default:"Local"`
	MetricsAddr   string        `env:"METRICS_ADDR" default:":8080"`
	LogLevel      string        `env:"LOG_LEVEL" default:"info"`
	LogFormat     string        `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"API_URL":        cfg.APIURL,
		"ELECTION_ID":    cfg.ElectionID,
		"ELECTION_STAGE": cfg.ElectionStage,
		"MQTT_BROKER":    cfg.MQTTBroker,
		"MQTT_TOPIC":     cfg.MQTTTopic,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.MQTTPort <= 0 || cfg.MQTTPort > 65535 {
		return fmt.Errorf("MQTT_PORT must be a valid port, got %d", cfg.MQTTPort)
	}

	if cfg.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
	}

	if _, err := time.LoadLocation(cfg.DisplayTZ); err != nil {
		return fmt.Errorf("DISPLAY_TIMEZONE must be a valid IANA zone name: %w", err)
	}

	return nil
}

// Location returns the display timezone. The zone name is validated during
// Load, so this cannot fail afterwards.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return time.Local
	}
	return loc
}
