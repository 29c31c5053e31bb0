package utils

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// SetupLogging sends logrus output to path, because the terminal belongs to
// the reader. debug forces the debug level.
func SetupLogging(path, level string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(f)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if debug {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
	return f, nil
}

// Main loads app.toml under paths and wires logging. It returns a closer for
// the log file.
func Main(paths Paths, debug bool) (io.Closer, error) {
	if err := LoadConfig(paths.AppConfigFile()); err != nil {
		return nil, err
	}
	if err := paths.Ensure(); err != nil {
		return nil, err
	}
	closer, err := SetupLogging(paths.LogFile(), AppConfig.Log.Level, debug)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"root":  paths.Root,
		"books": paths.BooksDir(),
	}).Info("starting")
	return closer, nil
}
