package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"stealth_reader/pager"
)

func TestListBooks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("bb"))
	writeFile(t, dir, "a.txt", []byte("a"))
	writeFile(t, dir, "notes.md", []byte("skip"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c.txt"), 0755))

	books := ListBooks(dir, ".txt")
	require.Len(t, books, 2)
	assert.Equal(t, "a.txt", books[0].Name)
	assert.Equal(t, "b.txt", books[1].Name)
	assert.Equal(t, int64(2), books[1].Size)
	assert.Equal(t, filepath.Join(dir, "a.txt"), books[0].Path)

	assert.Equal(t, []string{"a.txt", "b.txt"}, BookNames(dir, ""))
}

func TestListBooksMissingDirectory(t *testing.T) {
	books := ListBooks(filepath.Join(t.TempDir(), "gone"), ".txt")
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestAnnotate(t *testing.T) {
	books := Annotate([]Book{{Name: "a.txt"}, {Name: "b.txt"}}, map[string]int{"b.txt": 400})
	assert.False(t, books[0].HasSaved)
	assert.True(t, books[1].HasSaved)
	assert.Equal(t, 400, books[1].Offset)
	assert.Contains(t, books[1].Description(), "400")
}

func TestLoadBookNotFound(t *testing.T) {
	content, err := LoadBook(t.TempDir(), "nope.txt")
	assert.Empty(t, content)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "file not found: nope.txt", err.Error())
}

func TestLoadBookUnreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.txt"), 0755))

	content, err := LoadBook(dir, "folder.txt")
	assert.Empty(t, content)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreadable))
	assert.True(t, strings.HasPrefix(err.Error(), "cannot open/read: "))
}

func TestLoadBookGBK(t *testing.T) {
	dir := t.TempDir()
	raw, err := simplifiedchinese.GBK.NewEncoder().String("第一章\r\n\r\n\u3000\u3000正文内容\r\n继续")
	require.NoError(t, err)
	writeFile(t, dir, "gbk.txt", []byte(raw))
	withDetector(t, &stubDetector{charset: "GB-18030"})

	content, err := LoadBook(dir, "gbk.txt")
	require.NoError(t, err)
	assert.Equal(t, "第一章    正文内容继续", content)
}

func TestLoadBookUTF8(t *testing.T) {
	dir := t.TempDir()
	text := strings.Repeat("第一回\n\n话说天下大势，分久必合，合久必分。\n周末七国分争，并入于秦。\n\n", 20)
	writeFile(t, dir, "utf8.txt", []byte(text))

	content, err := LoadBook(dir, "utf8.txt")
	require.NoError(t, err)
	assert.Equal(t, Normalize(text), content)
	assert.NotContains(t, content, "\n")
}

func TestLoadedBookPagesReassemble(t *testing.T) {
	dir := t.TempDir()
	text := strings.Repeat("滚滚长江东逝水，浪花淘尽英雄。\n是非成败转头空。\n\n青山依旧在，几度夕阳红。\n", 37)
	writeFile(t, dir, "poem.txt", []byte(text))

	content, err := LoadBook(dir, "poem.txt")
	require.NoError(t, err)

	p, err := pager.New(content, pager.Geometry{Rows: 7, Columns: 13}, 0)
	require.NoError(t, err)

	var b strings.Builder
	for {
		for _, line := range p.CurrentPage() {
			b.WriteString(line)
		}
		if !p.Next() {
			break
		}
	}
	assert.Equal(t, content, b.String())
}
