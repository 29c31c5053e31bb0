// Package hotkey parses hotkey strings such as "<ctrl>+m" and runs the
// background listener that turns global key presses into reader events.
package hotkey

import (
	"fmt"
	"strings"
)

// Modifier order used when rendering key strings.
var modifierOrder = []string{"ctrl", "alt", "shift"}

// Binding is a parsed hotkey: zero or more modifiers plus one key.
type Binding struct {
	Ctrl  bool
	Alt   bool
	Shift bool
	Key   string
}

// Parse reads the "<mod>+<mod>+key" form. Modifiers are written in angle
// brackets; the key may be a single character or a bracketed name such as
// <space>.
func Parse(s string) (Binding, error) {
	var b Binding
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return b, fmt.Errorf("empty hotkey")
	}

	parts := splitParts(s)
	for i, part := range parts {
		last := i == len(parts)-1
		name := strings.TrimSuffix(strings.TrimPrefix(part, "<"), ">")
		bracketed := name != part
		switch {
		case bracketed && name == "ctrl" && !last:
			b.Ctrl = true
		case bracketed && name == "alt" && !last:
			b.Alt = true
		case bracketed && name == "shift" && !last:
			b.Shift = true
		case last && name != "":
			b.Key = name
		default:
			return Binding{}, fmt.Errorf("bad hotkey %q: unexpected %q", s, part)
		}
	}
	if b.Key == "" {
		return Binding{}, fmt.Errorf("bad hotkey %q: no key", s)
	}
	return b, nil
}

// splitParts splits on "+" while keeping a trailing "+" key, so "<ctrl>++"
// yields ["<ctrl>", "+"].
func splitParts(s string) []string {
	if strings.HasSuffix(s, "++") {
		return append(strings.Split(strings.TrimSuffix(s, "++"), "+"), "+")
	}
	if s == "+" {
		return []string{"+"}
	}
	return strings.Split(s, "+")
}

// KeyString renders b the way bubbletea names key presses, e.g. "ctrl+m" or
// "alt+q".
func (b Binding) KeyString() string {
	var mods []string
	for _, m := range modifierOrder {
		if b.has(m) {
			mods = append(mods, m)
		}
	}
	return strings.Join(append(mods, b.Key), "+")
}

// String renders b back into the persisted "<mod>+key" form.
func (b Binding) String() string {
	var parts []string
	for _, m := range modifierOrder {
		if b.has(m) {
			parts = append(parts, "<"+m+">")
		}
	}
	key := b.Key
	if len([]rune(key)) > 1 {
		key = "<" + key + ">"
	}
	return strings.Join(append(parts, key), "+")
}

func (b Binding) has(mod string) bool {
	switch mod {
	case "ctrl":
		return b.Ctrl
	case "alt":
		return b.Alt
	case "shift":
		return b.Shift
	}
	return false
}

// Terminals cannot tell these control chords from the keys they encode, so
// bubbletea reports them under the key's name.
var terminalAliases = map[string]string{
	"ctrl+m": "enter",
	"ctrl+i": "tab",
	"ctrl+[": "esc",
}

// Matches reports whether a bubbletea key string is this binding.
func (b Binding) Matches(key string) bool {
	want := b.KeyString()
	if strings.EqualFold(key, want) {
		return true
	}
	alias, ok := terminalAliases[want]
	return ok && key == alias
}
