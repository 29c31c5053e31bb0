package utils

import (
	"os"
	"path/filepath"
)

// RootEnv overrides the application root when no flag is given.
const RootEnv = "STEALTH_READER_ROOT"

// Paths locates everything the application keeps under its root.
type Paths struct {
	Root string
}

// ResolveRoot picks the application root: the flag value, then $STEALTH_READER_ROOT,
// then ~/.config/stealth_reader.
func ResolveRoot(flag string) Paths {
	if flag != "" {
		return Paths{Root: expandPath(flag)}
	}
	if env := os.Getenv(RootEnv); env != "" {
		return Paths{Root: expandPath(env)}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{Root: "."}
	}
	return Paths{Root: filepath.Join(home, ".config", "stealth_reader")}
}

func (p Paths) Resources() string { return filepath.Join(p.Root, "resources") }

func (p Paths) SettingsFile() string { return filepath.Join(p.Resources(), "config.json") }

func (p Paths) AppConfigFile() string { return filepath.Join(p.Resources(), "app.toml") }

// BooksDir is [library] dir from app.toml when set, else <root>/books.
func (p Paths) BooksDir() string {
	if AppConfig.Library.Dir != "" {
		return AppConfig.Library.Dir
	}
	return filepath.Join(p.Root, "books")
}

// LogFile is [log] file from app.toml when set, else resources/stealth_reader.log.
func (p Paths) LogFile() string {
	if AppConfig.Log.File != "" {
		return expandPath(AppConfig.Log.File)
	}
	return filepath.Join(p.Resources(), "stealth_reader.log")
}

// Ensure creates the resources and books directories.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.Resources(), p.BooksDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
