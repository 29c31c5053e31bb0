package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"stealth_reader/hotkey"
	"stealth_reader/lang"
	"stealth_reader/library"
	"stealth_reader/pager"
	"stealth_reader/settings"
	"stealth_reader/utils"
)

type AppState int

const (
	StateLibrary AppState = iota
	StateReader
)

// hotkeyMsg is one event from a session's listener. Session tells stale
// events from earlier sessions apart.
type hotkeyMsg struct {
	Session int
	Event   hotkey.Event
}

// Options wires the app to its collaborators.
type Options struct {
	Store         *settings.Store
	BooksDir      string
	Extension     string
	AppConfigPath string
	// NewHook builds the global key source for each session.
	NewHook func() hotkey.Hook
}

type AppModel struct {
	state     AppState
	opts      Options
	settings  settings.Settings
	libraryUI LibraryModel
	readerUI  ReaderModel
	listener  *hotkey.Listener
	session   int
	watcher   *bookWatcher
	width     int
	height    int

	// set by ctrl+c while a close is already pending
	quitAfterClose bool
}

func NewAppModel(opts Options) AppModel {
	if opts.NewHook == nil {
		opts.NewHook = func() hotkey.Hook { return hotkey.SignalHook{} }
	}
	s := opts.Store.Load()
	books := library.Annotate(library.ListBooks(opts.BooksDir, opts.Extension), s.Progress)

	m := AppModel{
		state:     StateLibrary,
		opts:      opts,
		settings:  s,
		libraryUI: NewLibraryModel(books, s),
	}

	if w, err := newBookWatcher(opts.BooksDir); err != nil {
		log.WithError(err).WithField("dir", opts.BooksDir).Warn("not watching books directory")
	} else {
		m.watcher = w
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.wait()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.libraryUI.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.state == StateReader {
				if m.readerUI.closing {
					m.quitAfterClose = true
					return m, nil
				}
				var cmd tea.Cmd
				m.readerUI, cmd = m.readerUI.Close(true)
				return m, cmd
			}
			return m, tea.Quit
		}

	case booksChangedMsg:
		m.reloadBooks()
		m.libraryUI.SetStatus(lang.Active().Library.Refreshed, false)
		return m, m.watcher.wait()

	case sessionClosedMsg:
		return m.endSession(msg)

	case hotkeyMsg:
		if m.state != StateReader || msg.Session != m.session {
			return m, nil
		}
		var cmd tea.Cmd
		m.readerUI, cmd = m.readerUI.Update(msg)
		if msg.Event == hotkey.EventClose {
			return m, cmd
		}
		return m, tea.Batch(cmd, waitForHotkey(m.session, m.listener.Events()))
	}

	switch m.state {
	case StateLibrary:
		return m.handleStateLibrary(msg)
	case StateReader:
		var cmd tea.Cmd
		m.readerUI, cmd = m.readerUI.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m AppModel) handleStateLibrary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.libraryUI.Filtering() {
		switch {
		case keyMsg.String() == "enter" && m.libraryUI.activeTab == tabBooks:
			if book, ok := m.libraryUI.SelectedBook(); ok {
				return m.startSession(book)
			}
			return m, nil
		case m.libraryUI.activeTab == tabSettings:
			switch keyMsg.String() {
			case "left", "h":
				m.adjustSetting(-1)
				return m, nil
			case "right", "l":
				m.adjustSetting(1)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.libraryUI, cmd = m.libraryUI.Update(msg)
	return m, cmd
}

// startSession loads book and switches to the reader. Invalid geometry or a
// load failure leave the app in the library with a message.
func (m AppModel) startSession(book library.Book) (tea.Model, tea.Cmd) {
	s := m.settings
	geometry := s.Geometry()
	if err := geometry.Validate(); err != nil {
		log.WithError(err).Warn("refusing to start session")
		m.libraryUI.SetStatus(lang.BadGeometry(err), true)
		return m, nil
	}

	content, err := library.LoadBook(m.opts.BooksDir, book.Name)
	if err != nil {
		log.WithError(err).WithField("book", book.Name).Warn("cannot open book")
		m.libraryUI.SetStatus(lang.LoadFailed(err), true)
		return m, nil
	}

	p, err := pager.New(content, geometry, s.ProgressFor(book.Name))
	if err != nil {
		m.libraryUI.SetStatus(lang.BadGeometry(err), true)
		return m, nil
	}

	m.settings.LastSelectedBook = book.Name
	if err := m.opts.Store.Save(m.settings); err != nil {
		log.WithError(err).Warn("could not save last selected book")
	}

	m.session++
	m.listener = hotkey.NewListener(m.opts.NewHook())
	m.listener.Start(context.Background())

	m.readerUI = NewReaderModel(book.Name, p, m.settings)
	m.readerUI.Width, m.readerUI.Height = m.width, m.height
	m.libraryUI.SetStatus("", false)
	m.state = StateReader

	log.WithFields(log.Fields{
		"book":   book.Name,
		"offset": p.Offset(),
		"length": p.Len(),
	}).Info("session started")
	return m, waitForHotkey(m.session, m.listener.Events())
}

// endSession stops the listener and persists the final offset before the
// session counts as closed.
func (m AppModel) endSession(msg sessionClosedMsg) (tea.Model, tea.Cmd) {
	m.stopListener()
	if err := m.opts.Store.RecordProgress(&m.settings, msg.Book, msg.Offset); err != nil {
		log.WithError(err).Error("could not save progress")
		m.libraryUI.SetStatus(lang.SaveSettingsFailed(err), true)
	}
	m.state = StateLibrary
	m.reloadBooks()
	quit := msg.Quit || m.quitAfterClose
	m.quitAfterClose = false
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *AppModel) stopListener() {
	if m.listener != nil {
		m.listener.Stop()
		m.listener = nil
	}
}

func (m *AppModel) reloadBooks() {
	books := library.ListBooks(m.opts.BooksDir, m.opts.Extension)
	m.libraryUI.SetBooks(library.Annotate(books, m.settings.Progress), "")
}

func (m *AppModel) adjustSetting(delta int) {
	item, ok := m.libraryUI.SelectedSetting()
	if !ok {
		return
	}

	s := &m.settings
	switch item.Kind {
	case SettingLanguage:
		loc := lang.NextLocale(delta)
		lang.SetLocale(loc)
		utils.AppConfig.UI.Locale = string(loc)
		if m.opts.AppConfigPath != "" {
			if err := utils.SaveConfig(m.opts.AppConfigPath); err != nil {
				log.WithError(err).Warn("could not save app config")
			}
		}
		m.libraryUI.RefreshSettings(*s)
		m.reloadBooks()
		return
	case SettingLines:
		s.LinesPerPage = clampInt(s.LinesPerPage+delta, minLines, maxLines)
	case SettingChars:
		s.CharsPerLine = clampInt(s.CharsPerLine+delta, minChars, maxChars)
	case SettingOpacity:
		s.Opacity = clampFloat(s.Opacity+float64(delta)*opacityStep, minOpacity, 1)
	case SettingPaging:
		s.PagingHotkey = cyclePaging(s.PagingHotkey, delta)
	}

	if err := m.opts.Store.Save(*s); err != nil {
		m.libraryUI.SetStatus(lang.SaveSettingsFailed(err), true)
	}
	m.libraryUI.RefreshSettings(*s)
}

const (
	minLines    = 1
	maxLines    = 20
	minChars    = 10
	maxChars    = 100
	minOpacity  = 0.1
	opacityStep = 0.05
)

func cyclePaging(p settings.PagingStyle, delta int) settings.PagingStyle {
	styles := settings.PagingStyles
	idx := 0
	for i, s := range styles {
		if s == p {
			idx = i
		}
	}
	n := len(styles)
	return styles[((idx+delta)%n+n)%n]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	// keep two decimals so repeated steps do not drift
	return float64(int(v*100+0.5)) / 100
}

func waitForHotkey(session int, events <-chan hotkey.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return hotkeyMsg{Session: session, Event: ev}
	}
}

func (m AppModel) View() string {
	switch m.state {
	case StateLibrary:
		return m.libraryUI.View()
	case StateReader:
		return m.readerUI.View()
	default:
		return lang.Active().Common.UnknownState
	}
}

// shutdown releases the listener and the directory watcher.
func (m *AppModel) shutdown() {
	m.stopListener()
	if m.watcher != nil {
		m.watcher.Close()
	}
}

func RunApp(opts Options) error {
	app := NewAppModel(opts)

	p := tea.NewProgram(app, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.shutdown()
	} else {
		app.shutdown()
	}
	return err
}
