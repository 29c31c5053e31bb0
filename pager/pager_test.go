package pager

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stealth_reader/lang"
)

var defaultGeometry = Geometry{Rows: 10, Columns: 40}

func mustNew(t *testing.T, content string, g Geometry, offset int) *Pager {
	t.Helper()
	p, err := New(content, g, offset)
	require.NoError(t, err)
	return p
}

func TestGeometry(t *testing.T) {
	assert.Equal(t, 400, defaultGeometry.Capacity())
	assert.NoError(t, defaultGeometry.Validate())

	for _, g := range []Geometry{{0, 40}, {10, 0}, {-1, 40}, {10, -3}} {
		err := g.Validate()
		assert.True(t, errors.Is(err, ErrInvalidGeometry), "%+v", g)
	}
}

func TestNewRejectsInvalidGeometry(t *testing.T) {
	p, err := New("text", Geometry{Rows: 0, Columns: 40}, 0)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestNewClampsOffset(t *testing.T) {
	content := strings.Repeat("字", 1000)

	assert.Equal(t, 0, mustNew(t, content, defaultGeometry, -5).Offset())
	assert.Equal(t, 123, mustNew(t, content, defaultGeometry, 123).Offset())

	p := mustNew(t, content, defaultGeometry, 5000)
	assert.Equal(t, 1000, p.Offset())
	assert.True(t, p.AtEnd())
}

func TestNextStopsBeforeEnd(t *testing.T) {
	p := mustNew(t, strings.Repeat("字", 1000), defaultGeometry, 0)

	assert.True(t, p.Next())
	assert.Equal(t, 400, p.Offset())
	assert.True(t, p.Next())
	assert.Equal(t, 800, p.Offset())
	assert.False(t, p.Next())
	assert.Equal(t, 800, p.Offset())
}

func TestPrevStopsAtStart(t *testing.T) {
	p := mustNew(t, strings.Repeat("a", 1000), defaultGeometry, 0)
	assert.False(t, p.Prev())
	assert.Equal(t, 0, p.Offset())

	p = mustNew(t, strings.Repeat("a", 1000), defaultGeometry, 500)
	assert.True(t, p.Prev())
	assert.Equal(t, 100, p.Offset())
	assert.False(t, p.Prev())
	assert.Equal(t, 100, p.Offset())
}

func TestCurrentPageLayout(t *testing.T) {
	content := strings.Repeat("0123456789", 41)
	p := mustNew(t, content, Geometry{Rows: 20, Columns: 40}, 0)

	lines := p.CurrentPage()
	require.Len(t, lines, 11)
	for _, line := range lines[:10] {
		assert.Equal(t, 40, len([]rune(line)))
	}
	assert.Equal(t, "0123456789", lines[10])
}

func TestCurrentPageCountsRunes(t *testing.T) {
	p := mustNew(t, "一二三四五六七", Geometry{Rows: 2, Columns: 3}, 0)
	assert.Equal(t, []string{"一二三", "四五六"}, p.CurrentPage())

	assert.True(t, p.Next())
	assert.Equal(t, []string{"七"}, p.CurrentPage())
}

func TestEndSentinel(t *testing.T) {
	content := strings.Repeat("a", 400)

	p := mustNew(t, content, defaultGeometry, 0)
	assert.Len(t, p.CurrentPage(), 10)
	assert.False(t, p.Next())

	p = mustNew(t, content, defaultGeometry, 400)
	assert.Equal(t, []string{p.EndMarker}, p.CurrentPage())
	assert.Equal(t, lang.Active().Reader.EndOfBook, p.EndMarker)
}

func TestCapacityLargerThanDocument(t *testing.T) {
	content := strings.Repeat("b", 50)
	p := mustNew(t, content, defaultGeometry, 0)

	assert.Equal(t, []string{strings.Repeat("b", 40), strings.Repeat("b", 10)}, p.CurrentPage())
	assert.False(t, p.Next())
	assert.Equal(t, 1, p.PageCount())
	assert.Equal(t, 100.0, p.Percent())
}

func TestEmptyDocument(t *testing.T) {
	p := mustNew(t, "", defaultGeometry, 0)
	assert.True(t, p.AtEnd())
	assert.Equal(t, []string{p.EndMarker}, p.CurrentPage())
	assert.False(t, p.Next())
	assert.False(t, p.Prev())
	assert.Equal(t, 1, p.PageCount())
}

func TestPosition(t *testing.T) {
	p := mustNew(t, strings.Repeat("a", 1000), defaultGeometry, 0)
	assert.Equal(t, 3, p.PageCount())
	assert.Equal(t, 1, p.PageNumber())
	assert.InDelta(t, 40.0, p.Percent(), 0.001)

	p.Next()
	p.Next()
	assert.Equal(t, 3, p.PageNumber())
	assert.InDelta(t, 100.0, p.Percent(), 0.001)
	assert.Equal(t, 1000, p.Len())
	assert.Equal(t, defaultGeometry, p.Geometry())
}

func TestPagesReassembleDocument(t *testing.T) {
	content := strings.Repeat("话说天下大势，分久必合。abc ", 53)
	geometries := []Geometry{{1, 1}, {3, 7}, {10, 40}, {25, 80}}

	for _, g := range geometries {
		p := mustNew(t, content, g, 0)
		var b strings.Builder
		for {
			for _, line := range p.CurrentPage() {
				b.WriteString(line)
			}
			if !p.Next() {
				break
			}
		}
		assert.Equal(t, content, b.String(), "%+v", g)
	}
}

func TestStepsStayAligned(t *testing.T) {
	p := mustNew(t, strings.Repeat("x", 997), Geometry{Rows: 3, Columns: 11}, 5)
	for p.Next() {
		assert.Equal(t, 5, p.Offset()%p.Geometry().Capacity())
	}
	for p.Prev() {
		assert.Equal(t, 5, p.Offset()%p.Geometry().Capacity())
	}
	assert.Equal(t, 5, p.Offset())
}
