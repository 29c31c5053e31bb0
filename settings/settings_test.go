package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stealth_reader/pager"
)

func TestPagingKeys(t *testing.T) {
	assert.Equal(t, []string{"right"}, PagingArrows.NextKeys())
	assert.Equal(t, []string{"left"}, PagingArrows.PrevKeys())
	assert.Equal(t, []string{"d", "D"}, PagingAD.NextKeys())
	assert.Equal(t, []string{"a", "A"}, PagingAD.PrevKeys())
	assert.Equal(t, []string{"d", "D"}, PagingStyle("A 和 D").NextKeys())
}

func TestGeometry(t *testing.T) {
	s := Defaults()
	assert.Equal(t, pager.Geometry{Rows: 10, Columns: 40}, s.Geometry())
}

func TestProgressFor(t *testing.T) {
	s := Defaults()
	assert.Zero(t, s.ProgressFor("unknown.txt"))
	s.Progress["known.txt"] = 42
	assert.Equal(t, 42, s.ProgressFor("known.txt"))
}

func TestSurface(t *testing.T) {
	s := Defaults()
	assert.Equal(t, "#000000", s.Surface().Hex())

	s.BackgroundColor = MustParseColor("#FFFFFF")
	s.Opacity = 0.5
	assert.Equal(t, "#808080", s.Surface().Hex())
}
