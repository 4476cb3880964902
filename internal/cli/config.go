package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from ~/.config/asejson/config.toml.
// Flags override config values; config values override built-in defaults.
type Config struct {
	Serve ServeConfig `toml:"serve"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr    string `toml:"addr"`
	Dir     string `toml:"dir"`
	NoCache bool   `toml:"no_cache"`
}

// defaultConfig returns the built-in defaults applied when no config
// file exists or a key is unset.
func defaultConfig() Config {
	return Config{
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// loadConfig reads the config file if present. A missing file is not an
// error; malformed TOML is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = defaultConfig().Serve.Addr
	}
	return cfg, nil
}
