package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	log "github.com/sirupsen/logrus"

	"stealth_reader/hotkey"
	"stealth_reader/lang"
	"stealth_reader/pager"
	"stealth_reader/settings"
	"stealth_reader/utils"
)

var (
	defaultMinimize = hotkey.Binding{Ctrl: true, Key: "m"}
	defaultClose    = hotkey.Binding{Alt: true, Key: "q"}
)

type readerKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func newReaderKeyMap(style settings.PagingStyle) readerKeyMap {
	return readerKeyMap{
		Next: key.NewBinding(key.WithKeys(style.NextKeys()...)),
		Prev: key.NewBinding(key.WithKeys(style.PrevKeys()...)),
	}
}

// sessionClosedMsg carries the final position of a reading session back to
// the app, which must persist it.
type sessionClosedMsg struct {
	Book   string
	Offset int
	Quit   bool
}

type ReaderModel struct {
	Book     string
	Pager    *pager.Pager
	Hidden   bool
	Width    int
	Height   int
	settings settings.Settings
	keys     readerKeyMap
	minimize hotkey.Binding
	close    hotkey.Binding
	style    gloss.Style
	closing  bool
}

func NewReaderModel(book string, p *pager.Pager, s settings.Settings) ReaderModel {
	return ReaderModel{
		Book:     book,
		Pager:    p,
		settings: s,
		keys:     newReaderKeyMap(s.PagingHotkey),
		minimize: parseBinding(s.MinimizeHotkey, defaultMinimize),
		close:    parseBinding(s.CloseHotkey, defaultClose),
		style:    PageStyle(s),
	}
}

func parseBinding(s string, fallback hotkey.Binding) hotkey.Binding {
	b, err := hotkey.Parse(s)
	if err != nil {
		log.WithError(err).WithField("hotkey", s).Warn("falling back to default hotkey")
		return fallback
	}
	return b
}

func (m ReaderModel) Init() tea.Cmd { return nil }

func (m ReaderModel) Update(msg tea.Msg) (ReaderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := msg.String()
		switch {
		case m.minimize.Matches(k):
			m.Hidden = !m.Hidden
		case m.close.Matches(k), k == "esc":
			return m.Close(false)
		case m.Hidden:
			// paging is disabled while hidden
		case key.Matches(msg, m.keys.Next):
			m.Pager.Next()
		case key.Matches(msg, m.keys.Prev):
			m.Pager.Prev()
		}

	case hotkeyMsg:
		switch msg.Event {
		case hotkey.EventToggle:
			m.Hidden = !m.Hidden
		case hotkey.EventClose:
			return m.Close(false)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

// Close ends the session once and reports the current offset.
func (m ReaderModel) Close(quit bool) (ReaderModel, tea.Cmd) {
	if m.closing {
		return m, nil
	}
	m.closing = true
	closed := sessionClosedMsg{Book: m.Book, Offset: m.Pager.Offset(), Quit: quit}
	return m, func() tea.Msg { return closed }
}

func (m ReaderModel) View() string {
	if m.Hidden {
		return lang.Active().Reader.Hidden
	}

	lines := m.Pager.CurrentPage()
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = runewidth.FillRight(line, width)
	}

	page := m.style.Render(strings.Join(padded, "\n"))
	if !utils.AppConfig.Reader.ShowStatus {
		return page
	}

	status := lang.ReaderStatus(m.Pager.Percent(), m.Pager.PageNumber(), m.Pager.PageCount())
	if limit := gloss.Width(page); limit > 0 {
		status = truncate.StringWithTail(status, uint(limit), "…")
	}
	return page + "\n" + FooterStyle.Render(status)
}
