// Package settings holds the persisted reader preferences and per-book
// progress, and the store that keeps them on disk.
package settings

import (
	"encoding/json"
	"sort"

	"stealth_reader/pager"
)

type PagingStyle string

const (
	PagingArrows PagingStyle = "arrow-keys"
	PagingAD     PagingStyle = "a-d-keys"
)

// Values written by older releases.
var legacyPaging = map[PagingStyle]PagingStyle{
	"← 和 →": PagingArrows,
	"A 和 D": PagingAD,
}

// PagingStyles lists the styles in the order the settings panel cycles them.
var PagingStyles = []PagingStyle{PagingArrows, PagingAD}

func (p PagingStyle) normalize() PagingStyle {
	if modern, ok := legacyPaging[p]; ok {
		return modern
	}
	switch p {
	case PagingArrows, PagingAD:
		return p
	}
	return PagingArrows
}

// NextKeys are the key strings that turn to the next page.
func (p PagingStyle) NextKeys() []string {
	if p.normalize() == PagingAD {
		return []string{"d", "D"}
	}
	return []string{"right"}
}

// PrevKeys are the key strings that turn to the previous page.
func (p PagingStyle) PrevKeys() []string {
	if p.normalize() == PagingAD {
		return []string{"a", "A"}
	}
	return []string{"left"}
}

type Settings struct {
	FontSize         int            `json:"font_size"`
	FontColor        Color          `json:"font_color"`
	BackgroundColor  Color          `json:"background_color"`
	Opacity          float64        `json:"opacity"`
	LinesPerPage     int            `json:"lines_per_page"`
	CharsPerLine     int            `json:"chars_per_line"`
	MinimizeHotkey   string         `json:"minimize_hotkey"`
	CloseHotkey      string         `json:"close_hotkey"`
	PagingHotkey     PagingStyle    `json:"paging_hotkey"`
	LastSelectedBook string         `json:"last_selected_book,omitempty"`
	Progress         map[string]int `json:"progress"`
}

// Defaults returns a fresh copy of the default schema.
func Defaults() Settings {
	return Settings{
		FontSize:        14,
		FontColor:       MustParseColor("#FFFFFF"),
		BackgroundColor: MustParseColor("#000000"),
		Opacity:         0.7,
		LinesPerPage:    10,
		CharsPerLine:    40,
		MinimizeHotkey:  "<ctrl>+m",
		CloseHotkey:     "<alt>+q",
		PagingHotkey:    PagingArrows,
		Progress:        map[string]int{},
	}
}

// schemaKeys are the top-level keys every loaded document must carry.
var schemaKeys = func() []string {
	data, err := json.Marshal(Defaults())
	if err != nil {
		panic(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		panic(err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// SchemaKeys returns the required top-level keys, sorted.
func SchemaKeys() []string {
	return append([]string(nil), schemaKeys...)
}

func (s Settings) Geometry() pager.Geometry {
	return pager.Geometry{Rows: s.LinesPerPage, Columns: s.CharsPerLine}
}

// ProgressFor returns the saved offset for book, or 0.
func (s Settings) ProgressFor(book string) int {
	return s.Progress[book]
}

// Surface is the opaque background the reader paints, the configured
// background flattened over black at the configured opacity.
func (s Settings) Surface() Color {
	return s.BackgroundColor.Over(Color{A: 1}, s.Opacity)
}
