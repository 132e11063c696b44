package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are the host settings read from the environment.
type Settings struct {
	EnforceFriendlyOptions bool   `env:"JAKLOGIC_ENFORCE_FRIENDLY_OPTIONS" envDefault:"true"`
	LogLevel               string `env:"JAKLOGIC_LOG_LEVEL" envDefault:"info"`
	LogFormat              string `env:"JAKLOGIC_LOG_FORMAT" envDefault:"text"`
	SaveDir                string `env:"JAKLOGIC_SAVE_DIR" envDefault:"saves"`
	Player                 int    `env:"JAKLOGIC_PLAYER" envDefault:"1"`
}

// ParseEnv parses environment variables into the provided struct using env
// tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.Player < 1 {
		return Settings{}, fmt.Errorf("parse env: JAKLOGIC_PLAYER must be positive, got %d", s.Player)
	}
	return s, nil
}
