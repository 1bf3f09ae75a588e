package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvConfigPath names the environment variable that points at a config file.
const EnvConfigPath = "COURTSIDE_CONFIG"

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Log     LogConfig
	Catalog CatalogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen   bool   `mapstructure:"alt_screen"`
	Mouse       bool   `mapstructure:"mouse"`
	FrameWidth  int    `mapstructure:"frame_width"`
	StartScreen string `mapstructure:"start_screen"`
}

// LogConfig controls where log output goes. An empty path discards logs.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig selects an alternate sample catalog. Empty uses the embedded one.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// COURTSIDE_. A missing config file is fine; a malformed one is not.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.frame_width", 56)
	v.SetDefault("ui.start_screen", "onboarding1")
	v.SetDefault("log.path", "")
	v.SetDefault("catalog.path", "")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "courtside"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COURTSIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.FrameWidth < 32 {
		c.UI.FrameWidth = 32
	}
	return c, nil
}
