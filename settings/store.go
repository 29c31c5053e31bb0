package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// ErrCorrupt marks a settings document that cannot be used at all.
var ErrCorrupt = errors.New("settings document corrupt")

// Store persists Settings as a JSON document at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the document. It never fails: a missing, unparseable or
// wrongly shaped document is replaced on disk by the defaults, and a document
// missing some keys gets them backfilled and written back.
func (s *Store) Load() Settings {
	logger := log.WithField("path", s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.WithError(err).Warn("settings unreadable, restoring defaults")
		}
		return s.reset()
	}

	settings, healed, err := merge(data)
	if err != nil {
		logger.WithError(err).Warn("restoring default settings")
		return s.reset()
	}

	if len(healed) > 0 {
		logger.WithField("keys", healed).Info("backfilled settings")
		if err := s.Save(settings); err != nil {
			logger.WithError(err).Warn("could not write back settings")
		}
	}
	return settings
}

func (s *Store) reset() Settings {
	defaults := Defaults()
	if err := s.Save(defaults); err != nil {
		log.WithField("path", s.path).WithError(err).Warn("could not write default settings")
	}
	return defaults
}

// merge decodes data over the defaults. It reports the keys it had to fill
// in or rewrite, and wraps ErrCorrupt when data is not a settings object.
func merge(data []byte) (Settings, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if raw == nil {
		return Settings{}, nil, fmt.Errorf("%w: document is null", ErrCorrupt)
	}

	settings := Defaults()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var healed []string
	for _, key := range schemaKeys {
		if _, ok := raw[key]; !ok {
			healed = append(healed, key)
		}
	}

	if settings.Progress == nil {
		settings.Progress = map[string]int{}
		if _, ok := raw["progress"]; ok {
			healed = append(healed, "progress")
		}
	}
	if style := settings.PagingHotkey.normalize(); style != settings.PagingHotkey {
		settings.PagingHotkey = style
		if _, ok := raw["paging_hotkey"]; ok {
			healed = append(healed, "paging_hotkey")
		}
	}
	return settings, healed, nil
}

// Save writes the whole document, replacing the old one in a single rename
// so a crash leaves either the previous or the new content.
func (s *Store) Save(settings Settings) error {
	if settings.Progress == nil {
		settings.Progress = map[string]int{}
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

// RecordProgress stores offset as the reading position of book and persists
// the whole document.
func (s *Store) RecordProgress(settings *Settings, book string, offset int) error {
	if book == "" {
		return nil
	}
	if settings.Progress == nil {
		settings.Progress = map[string]int{}
	}
	settings.Progress[book] = offset
	log.WithFields(log.Fields{"book": book, "offset": offset}).Info("saving progress")
	return s.Save(*settings)
}
