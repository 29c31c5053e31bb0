// Package pager slices a normalized document into fixed-size pages addressed
// by a character offset.
package pager

import (
	"errors"
	"fmt"

	"stealth_reader/lang"
)

var ErrInvalidGeometry = errors.New("invalid page geometry")

// Geometry is the page shape, fixed for a reading session.
type Geometry struct {
	Rows    int
	Columns int
}

func (g Geometry) Validate() error {
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("%w: %d rows x %d columns", ErrInvalidGeometry, g.Rows, g.Columns)
	}
	return nil
}

// Capacity is the number of characters shown on one page.
func (g Geometry) Capacity() int {
	return g.Rows * g.Columns
}

// Pager is the page cursor over one document. The offset only ever moves in
// whole-page steps from where the session started.
type Pager struct {
	content  []rune
	offset   int
	geometry Geometry

	// EndMarker is the single line shown once the offset reaches the end.
	EndMarker string
}

// New validates g and positions the cursor at offset, clamped into
// [0, len(content)].
func New(content string, g Geometry, offset int) (*Pager, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	runes := []rune(content)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	return &Pager{
		content:   runes,
		offset:    offset,
		geometry:  g,
		EndMarker: lang.Active().Reader.EndOfBook,
	}, nil
}

// CurrentPage returns the visible rows, top to bottom. Past the end of the
// document it returns just the end marker.
func (p *Pager) CurrentPage() []string {
	start := p.offset
	end := start + p.geometry.Capacity()
	if end > len(p.content) {
		end = len(p.content)
	}
	if start >= end {
		return []string{p.EndMarker}
	}

	page := p.content[start:end]
	cols := p.geometry.Columns
	lines := make([]string, 0, (len(page)+cols-1)/cols)
	for i := 0; i < len(page); i += cols {
		j := i + cols
		if j > len(page) {
			j = len(page)
		}
		lines = append(lines, string(page[i:j]))
	}
	return lines
}

// Next advances one page unless that would land at or beyond the end.
func (p *Pager) Next() bool {
	next := p.offset + p.geometry.Capacity()
	if next >= len(p.content) {
		return false
	}
	p.offset = next
	return true
}

// Prev goes back one page unless that would go below zero.
func (p *Pager) Prev() bool {
	prev := p.offset - p.geometry.Capacity()
	if prev < 0 {
		return false
	}
	p.offset = prev
	return true
}

func (p *Pager) Offset() int { return p.offset }

func (p *Pager) Len() int { return len(p.content) }

func (p *Pager) Geometry() Geometry { return p.geometry }

// AtEnd reports whether the current page is the end marker.
func (p *Pager) AtEnd() bool { return p.offset >= len(p.content) }

// Percent is how far into the document the current page ends.
func (p *Pager) Percent() float64 {
	if len(p.content) == 0 {
		return 100
	}
	end := p.offset + p.geometry.Capacity()
	if end > len(p.content) {
		end = len(p.content)
	}
	return float64(end) * 100 / float64(len(p.content))
}

// PageNumber is the 1-based index of the current page counted from the
// document start.
func (p *Pager) PageNumber() int {
	return p.offset/p.geometry.Capacity() + 1
}

// PageCount is the number of pages in the document, at least one.
func (p *Pager) PageCount() int {
	c := p.geometry.Capacity()
	n := (len(p.content) + c - 1) / c
	if n == 0 {
		return 1
	}
	return n
}
