package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Reader settings
type ReaderConfig struct {
	VerticalPadding   int  `toml:"vertical_padding"`
	HorizontalPadding int  `toml:"horizontal_padding"`
	ShowStatus        bool `toml:"show_status"`
}

// Library settings
type LibraryConfig struct {
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
}

// Log settings
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// UI settings
type UIConfig struct {
	Locale string `toml:"locale"`
}

// Root config
type Config struct {
	Reader  ReaderConfig  `toml:"reader"`
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// Global variable to hold config
var AppConfig = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		Reader: ReaderConfig{
			VerticalPadding:   1,
			HorizontalPadding: 2,
			ShowStatus:        true,
		},
		Library: LibraryConfig{
			Extension: ".txt",
		},
		Log: LogConfig{
			Level: "info",
		},
		UI: UIConfig{
			Locale: "zh",
		},
	}
}

// expandPath replaces leading "~" with user home dir
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LoadConfig reads app.toml over the defaults into AppConfig. A missing file
// is written out with the defaults so it can be edited.
func LoadConfig(path string) error {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		AppConfig = cfg
		return SaveConfig(path)
	case err != nil:
		return fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Library.Dir = expandPath(cfg.Library.Dir)
	if cfg.Library.Extension == "" {
		cfg.Library.Extension = ".txt"
	}
	if !strings.HasPrefix(cfg.Library.Extension, ".") {
		cfg.Library.Extension = "." + cfg.Library.Extension
	}
	AppConfig = cfg
	return nil
}

// SaveConfig writes AppConfig to path.
func SaveConfig(path string) error {
	data, err := toml.Marshal(AppConfig)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
