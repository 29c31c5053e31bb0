package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultExtension is the plain-text extension recognised as a book.
const DefaultExtension = ".txt"

var (
	ErrNotFound   = errors.New("file not found")
	ErrUnreadable = errors.New("cannot open/read")
)

// ListBooks returns the books in dir whose names end in ext, sorted by name.
// A missing or unreadable directory yields no books.
func ListBooks(dir, ext string) []Book {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithField("dir", dir).WithError(err).Debug("books directory unavailable")
		return []Book{}
	}

	books := []Book{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		b := Book{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
		}
		if info, err := e.Info(); err == nil {
			b.Size = info.Size()
			b.Modified = info.ModTime()
		}
		books = append(books, b)
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].Name < books[j].Name
	})
	return books
}

// BookNames lists just the file names ListBooks would return.
func BookNames(dir, ext string) []string {
	books := ListBooks(dir, ext)
	names := make([]string, len(books))
	for i, b := range books {
		names[i] = b.Name
	}
	return names
}

// LoadBook reads dir/name, decodes it in its detected encoding and returns
// the normalized document. The only errors are ErrNotFound and ErrUnreadable.
func LoadBook(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	enc := DetectEncoding(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	text, err := decodeTolerant(data, enc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	content := Normalize(text)
	log.WithFields(log.Fields{
		"book":     name,
		"encoding": enc,
		"bytes":    len(data),
	}).Info("book loaded")
	return content, nil
}
