package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataFile string `yaml:"data_file"`
	Theme    string `yaml:"theme"`
	LogFile  string `yaml:"log_file"`
}

func Default() Config {
	base := stateDir()
	return Config{
		DataFile: filepath.Join(base, "habits.json"),
		Theme:    "dark",
		LogFile:  filepath.Join(base, "habitd.log"),
	}
}

// Load resolves the effective configuration: defaults, then the YAML config
// file if present, then HABITD_* environment overrides. A missing config
// file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path := configFilePath()
	if path != "" {
		fileCfg, err := FromFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, err
			}
		} else {
			cfg = merge(cfg, fileCfg)
		}
	}
	return FromEnv(cfg), nil
}

func FromFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("HABITD_DATA_FILE")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("HABITD_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	return cfg
}

func merge(base, overlay Config) Config {
	out := base
	if strings.TrimSpace(overlay.DataFile) != "" {
		out.DataFile = overlay.DataFile
	}
	if strings.TrimSpace(overlay.Theme) != "" {
		out.Theme = overlay.Theme
	}
	if strings.TrimSpace(overlay.LogFile) != "" {
		out.LogFile = overlay.LogFile
	}
	return out
}

func configFilePath() string {
	if v := strings.TrimSpace(os.Getenv("HABITD_CONFIG")); v != "" {
		return v
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "habitd", "config.yaml")
}

func stateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "habitd")
}
