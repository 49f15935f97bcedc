package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the game settings. NoColor forces plain glyphs; the standard NO_COLOR
// variable is honoured separately by termenv when picking the color profile.
type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	HistoryFile string `yaml:"history-file" env:"HISTORY_FILE" env-default:""`
	NoColor     bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

// MustLoad - load configuration from the config.yml file, or from the environment if there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}
