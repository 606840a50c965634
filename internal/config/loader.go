package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const fileName = "tictactoe.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.tictactoe/config.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Values missing from a file keep their defaults. TICTACTOE_* environment
// variables are applied last, then the result is validated.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		if err := cleanenv.ReadConfig(customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if loaded, ok := readYAML(path, cfg); ok {
			cfg = loaded
			break
		}
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}
	return cfg, cfg.Validate()
}

// embeddedDefault parses the embedded YAML on top of Default.
func embeddedDefault() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// readYAML overlays the file at path on base. Unreadable or malformed files
// are skipped.
func readYAML(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tictactoe", "config.yaml")
}

// Dir returns ~/.tictactoe, the directory for the database, host key and
// log file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: home directory: %w", err)
	}
	return filepath.Join(home, ".tictactoe"), nil
}
