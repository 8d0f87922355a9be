package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read once at startup and treated as immutable for the
// process lifetime. Components receive it explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	BotToken       string `env:"BOT_TOKEN"`
	WebAppURL      string `env:"WEB_APP_URL"`
	HomepageURL    string `env:"HOMEPAGE_URL"`
	OperatorChatID int64  `env:"OPERATOR_CHAT_ID"`
	Port           int    `env:"PORT" envDefault:"8000"`
	Env            string `env:"NODE_ENV" envDefault:"production"`

	ErrorLogPath    string `env:"ERROR_LOG_PATH" envDefault:"logs/error.log"`
	CombinedLogPath string `env:"COMBINED_LOG_PATH" envDefault:"logs/combined.log"`
}

// Development reports whether console logging should be enabled in
// addition to the log files.
func (c Config) Development() bool {
	return c.Env != "production"
}

// Load parses the process environment into a Config and refuses to
// produce one with any required value missing.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.BotToken == "" {
		return errors.New("BOT_TOKEN is required")
	}
	if cfg.WebAppURL == "" {
		return errors.New("WEB_APP_URL is required")
	}
	if cfg.HomepageURL == "" {
		return errors.New("HOMEPAGE_URL is required")
	}
	if cfg.OperatorChatID == 0 {
		return errors.New("OPERATOR_CHAT_ID is required")
	}
	if cfg.Port <= 0 {
		return fmt.Errorf("PORT must be > 0: got %d", cfg.Port)
	}
	return nil
}
