package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"stealth_reader/lang"
	"stealth_reader/library"
	"stealth_reader/settings"
)

const (
	tabBooks = iota
	tabSettings
)

// ---------------- LibraryModel ----------------
type LibraryModel struct {
	books        list.Model
	settingsList list.Model
	activeTab    int
	width        int
	height       int
	status       string
	statusErr    bool
}

type SettingKind int

const (
	SettingLanguage SettingKind = iota
	SettingLines
	SettingChars
	SettingOpacity
	SettingPaging
)

type SettingItem struct {
	Kind   SettingKind
	Label  string
	Detail string
	Value  string
}

func (s SettingItem) Title() string       { return fmt.Sprintf("%s: %s", s.Label, s.Value) }
func (s SettingItem) Description() string { return s.Detail }
func (s SettingItem) FilterValue() string { return s.Label }

func pagingName(p settings.PagingStyle) string {
	if p == settings.PagingAD {
		return lang.Active().Settings.PagingAD
	}
	return lang.Active().Settings.PagingArrows
}

func settingItems(s settings.Settings) []list.Item {
	texts := lang.Active().Settings
	return []list.Item{
		SettingItem{
			Kind:   SettingLanguage,
			Label:  texts.LanguageLabel,
			Detail: texts.LanguageDetail,
			Value:  lang.LanguageName(lang.CurrentLocale()),
		},
		SettingItem{
			Kind:   SettingLines,
			Label:  texts.LinesLabel,
			Detail: texts.LinesDetail,
			Value:  fmt.Sprintf("%d", s.LinesPerPage),
		},
		SettingItem{
			Kind:   SettingChars,
			Label:  texts.CharsLabel,
			Detail: texts.CharsDetail,
			Value:  fmt.Sprintf("%d", s.CharsPerLine),
		},
		SettingItem{
			Kind:   SettingOpacity,
			Label:  texts.OpacityLabel,
			Detail: texts.OpacityDetail,
			Value:  fmt.Sprintf("%.2f", s.Opacity),
		},
		SettingItem{
			Kind:   SettingPaging,
			Label:  texts.PagingLabel,
			Detail: texts.PagingDetail,
			Value:  pagingName(s.PagingHotkey),
		},
	}
}

func NewLibraryModel(books []library.Book, s settings.Settings) LibraryModel {
	bookList := list.New(nil, &itemDelegate{}, 0, 0)
	listSettings(&bookList)
	filterStyle(&bookList)

	settingsList := list.New(settingItems(s), &itemDelegate{}, 0, 0)
	listSettings(&settingsList)
	settingsList.SetFilteringEnabled(false)

	m := LibraryModel{
		books:        bookList,
		settingsList: settingsList,
	}
	m.SetBooks(books, s.LastSelectedBook)
	return m
}

// SetBooks replaces the book list, keeping the cursor on prefer when it is
// still present.
func (m *LibraryModel) SetBooks(books []library.Book, prefer string) {
	if prefer == "" {
		if b, ok := m.SelectedBook(); ok {
			prefer = b.Name
		}
	}
	items := make([]list.Item, len(books))
	selected := 0
	for i, b := range books {
		items[i] = b
		if b.Name == prefer {
			selected = i
		}
	}
	m.books.SetItems(items)
	if len(items) > 0 {
		m.books.Select(selected)
	}
}

func (m LibraryModel) SelectedBook() (library.Book, bool) {
	b, ok := m.books.SelectedItem().(library.Book)
	return b, ok
}

func (m LibraryModel) SelectedSetting() (SettingItem, bool) {
	s, ok := m.settingsList.SelectedItem().(SettingItem)
	return s, ok
}

// RefreshSettings redraws the settings tab from s, keeping the cursor.
func (m *LibraryModel) RefreshSettings(s settings.Settings) {
	idx := m.settingsList.Index()
	m.settingsList.SetItems(settingItems(s))
	m.settingsList.Select(idx)
}

// Filtering reports whether the book filter input has focus.
func (m LibraryModel) Filtering() bool {
	return m.books.FilterState() == list.Filtering
}

func (m *LibraryModel) SetStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *LibraryModel) resize(width, height int) {
	m.width = width
	m.height = height
	listWidth := width
	if listWidth > ListMaxWidth {
		listWidth = ListMaxWidth
	}
	listHeight := height - 6
	if listHeight < 1 {
		listHeight = 1
	}
	m.books.SetSize(listWidth, listHeight)
	m.settingsList.SetSize(listWidth, listHeight)
}

func (m LibraryModel) Init() tea.Cmd { return nil }

func (m LibraryModel) Update(msg tea.Msg) (LibraryModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "tab" && !m.Filtering() {
			m.activeTab = (m.activeTab + 1) % 2
			return m, nil
		}
	}

	if m.activeTab == tabBooks {
		m.books, cmd = m.books.Update(msg)
	} else {
		m.settingsList, cmd = m.settingsList.Update(msg)
	}
	return m, cmd
}

func (m LibraryModel) View() string {
	texts := lang.Active()

	tabs := []string{texts.Tabs.Books, texts.Tabs.Settings}
	var rendered []string
	for i, t := range tabs {
		if i == m.activeTab {
			rendered = append(rendered, ActiveTabStyle.Render(t))
		} else {
			rendered = append(rendered, InactiveTabStyle.Render(t))
		}
	}
	tabsRow := gloss.JoinHorizontal(gloss.Top, rendered...)
	underline := UnderlineRow.Render(strings.Repeat("─", gloss.Width(tabsRow)))

	var body string
	if m.activeTab == tabBooks {
		if len(m.books.Items()) == 0 {
			body = StatusMutedStyle.Render(texts.Library.Empty)
		} else {
			body = m.books.View()
		}
	} else {
		body = m.settingsList.View()
	}

	var footer string
	switch {
	case m.status != "" && m.statusErr:
		footer = StatusErrorStyle.Render(m.status)
	case m.status != "":
		footer = StatusStyle.Render(m.status)
	default:
		help := texts.Common.Help
		if m.width > 8 {
			help = wordwrap.String(help, m.width-8)
		}
		footer = StatusMutedStyle.Render(help)
	}

	return tabsRow + "\n" + underline + "\n" + body + "\n" + footer
}

// ---------------- itemDelegate ----------------
type itemDelegate struct {
	list.DefaultDelegate
}

func (d *itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	var title, desc string
	switch v := item.(type) {
	case library.Book:
		title = v.Title()
		desc = v.Description()
	case SettingItem:
		title = v.Title()
		desc = v.Description()
	default:
		title = lang.Active().Common.UnknownState
	}
	if m.Width() > 10 {
		title = runewidth.Truncate(title, m.Width()-4, "…")
		desc = runewidth.Truncate(desc, m.Width()-10, "…")
	}
	if index == m.Index() {
		title = SelectedTitleStyle.Render(title)
		desc = SelectedDescStyle.Render(desc)
	} else {
		title = NormalTitleStyle.Render(title)
		desc = NormalDescStyle.Render(desc)
	}
	fmt.Fprintf(w, "%s\n%s", title, desc)
}

func (d *itemDelegate) Height() int  { return 2 }
func (d *itemDelegate) Spacing() int { return 1 }
func (d *itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// ---------------- List styling ----------------
func filterStyle(l *list.Model) {
	l.FilterInput.Prompt = lang.Active().Library.FilterPrompt
	l.FilterInput.PromptStyle = PromptStyle
	l.FilterInput.TextStyle = PromptTextStyle
}

func listSettings(l *list.Model) {
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
}
