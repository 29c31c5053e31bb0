package lang

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocale(t *testing.T, loc Locale) {
	t.Helper()
	prev := CurrentLocale()
	require.True(t, SetLocale(loc))
	t.Cleanup(func() { SetLocale(prev) })
}

func TestSetLocale(t *testing.T) {
	withLocale(t, LocaleEnglish)
	assert.Equal(t, LocaleEnglish, CurrentLocale())
	assert.Equal(t, "(end of book)", Active().Reader.EndOfBook)

	assert.False(t, SetLocale("xx"))
	assert.Equal(t, LocaleEnglish, CurrentLocale())
}

func TestNextLocaleWraps(t *testing.T) {
	withLocale(t, LocaleChinese)
	assert.Equal(t, LocaleEnglish, NextLocale(1))
	assert.Equal(t, LocaleEnglish, NextLocale(-1))
	assert.Equal(t, LocaleChinese, NextLocale(2))
}

func TestEveryLocaleIsComplete(t *testing.T) {
	for _, loc := range AvailableLocales() {
		s, ok := translations[loc]
		require.True(t, ok, loc)
		assert.NotEmpty(t, s.Reader.EndOfBook, loc)
		assert.NotEmpty(t, s.Library.LoadFailed, loc)
		assert.NotEmpty(t, s.Settings.PagingArrows, loc)
		assert.Len(t, s.Settings.LanguageNames, len(AvailableLocales()), loc)
	}
}

func TestFormatters(t *testing.T) {
	withLocale(t, LocaleEnglish)
	assert.Equal(t, "Read up to character 400", ReadOffset(400))
	assert.Equal(t, "40.0%  1/3", ReaderStatus(40, 1, 3))
	assert.Contains(t, LoadFailed(errors.New("file not found: a.txt")), "file not found: a.txt")
}
