package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/hafasboard/pkg/util"
	"gopkg.in/yaml.v3"
)

// Settings is the board configuration consumed by the normalizer
type Settings struct {
	// APIProvider keys every provider-specific mapping table (e.g. "vbb", "rmv")
	APIProvider string `yaml:"api_provider" validate:"required"`
	// Timezone is the IANA zone used when a record carries no numeric offset
	Timezone string `yaml:"timezone" validate:"required,timezone"`
	// RemoveString is stripped from stop, origin and destination names
	RemoveString string `yaml:"remove_string"`
	// IgnoreDestination is a case-insensitive regex for destinations hidden from the board
	IgnoreDestination string `yaml:"ignore_destination"`
	// TransformsPath is a directory of mapping definitions, empty for the built-in tables
	TransformsPath string `yaml:"transforms_path"`
}

var environmentOverrides = map[string]func(*Settings, string){
	"HAFASBOARD_API_PROVIDER":       func(s *Settings, v string) { s.APIProvider = v },
	"HAFASBOARD_TIMEZONE":           func(s *Settings, v string) { s.Timezone = v },
	"HAFASBOARD_REMOVE_STRING":      func(s *Settings, v string) { s.RemoveString = v },
	"HAFASBOARD_IGNORE_DESTINATION": func(s *Settings, v string) { s.IgnoreDestination = v },
	"HAFASBOARD_TRANSFORMS_PATH":    func(s *Settings, v string) { s.TransformsPath = v },
}

func Default() Settings {
	return Settings{
		APIProvider: "vbb",
		Timezone:    "Europe/Berlin",
	}
}

// Load reads the YAML settings file at path. A missing file leaves the defaults in place,
// environment variables are applied on top and the result is validated.
func Load(path string) (Settings, error) {
	settings := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", path).Msg("Settings file not found, using defaults")
		case err != nil:
			return Settings{}, fmt.Errorf("read settings: %w", err)
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return Settings{}, fmt.Errorf("parse settings: %w", err)
			}
		}
	}

	settings.applyEnvironment(util.GetEnvironmentVariables("HAFASBOARD_"))

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return nil
}

func (s *Settings) applyEnvironment(env map[string]string) {
	for key, apply := range environmentOverrides {
		if value, ok := env[key]; ok && value != "" {
			apply(s, value)
		}
	}
}
