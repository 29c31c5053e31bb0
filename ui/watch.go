package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// booksChangedMsg reports that the books directory changed on disk.
type booksChangedMsg struct{}

// bookWatcher follows the books directory so the picker stays current.
type bookWatcher struct {
	fs *fsnotify.Watcher
}

func newBookWatcher(dir string) (*bookWatcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, err
	}
	return &bookWatcher{fs: fs}, nil
}

// wait blocks until the directory changes. It is re-armed after every
// booksChangedMsg.
func (w *bookWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0 {
					log.WithField("event", ev.String()).Debug("books directory changed")
					return booksChangedMsg{}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				log.WithError(err).Warn("books watcher error")
			}
		}
	}
}

func (w *bookWatcher) Close() error {
	return w.fs.Close()
}
