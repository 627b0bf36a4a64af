package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Load loads the Breakout configuration.
// Search order: customPath -> ~/.breakout/config.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded on top of Default, so partial files only override the
// keys they set. A customPath that cannot be read or parsed is an error;
// the other locations are skipped silently.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{"configs/breakout.yaml"}
	if p := userConfigPath("config.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, cfg.Validate()
}

// Parse decodes data on top of Default. The format is "yaml" or "toml".
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("%w: unsupported format %q", ErrInvalid, format)
	}
	return cfg, nil
}

// loadFile reads one config file, picking the decoder by extension.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := Parse(data, format)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", filename)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: get home dir: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
