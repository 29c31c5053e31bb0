package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saintfish/chardet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

type stubDetector struct {
	charset string
	err     error
	seen    int
}

func (s *stubDetector) DetectBest(b []byte) (*chardet.Result, error) {
	s.seen = len(b)
	if s.err != nil {
		return nil, s.err
	}
	return &chardet.Result{Charset: s.charset, Confidence: 100}, nil
}

func withDetector(t *testing.T, d charsetDetector) {
	t.Helper()
	old := detector
	detector = d
	t.Cleanup(func() { detector = old })
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestResolveCharset(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{"GB2312", "gbk"},
		{"GB-18030", "gbk"},
		{"gb18030", "gbk"},
		{"GB_2312", "gbk"},
		{"UTF-8", "UTF-8"},
		{"Big5", "Big5"},
		{"", "utf-8"},
	}
	for _, tt := range tests {
		t.Run(tt.verdict, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCharset(tt.verdict))
		})
	}
}

func TestDetectEncodingWidensChineseVerdicts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "book.txt", []byte("some bytes"))

	for _, verdict := range []string{"GB2312", "GB-18030"} {
		withDetector(t, &stubDetector{charset: verdict})
		assert.Equal(t, "gbk", DetectEncoding(path), verdict)
	}
}

func TestDetectEncodingSamplesFirst4K(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.txt", []byte(strings.Repeat("x", 10000)))

	stub := &stubDetector{charset: "ISO-8859-1"}
	withDetector(t, stub)

	assert.Equal(t, "ISO-8859-1", DetectEncoding(path))
	assert.Equal(t, sampleSize, stub.seen)
}

func TestDetectEncodingFallsBackToUTF8(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.Equal(t, "utf-8", DetectEncoding(filepath.Join(dir, "nope.txt")))
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, dir, "empty.txt", nil)
		stub := &stubDetector{charset: "Big5"}
		withDetector(t, stub)
		assert.Equal(t, "utf-8", DetectEncoding(path))
		assert.Zero(t, stub.seen)
	})

	t.Run("detector error", func(t *testing.T) {
		path := writeFile(t, dir, "odd.txt", []byte("abc"))
		withDetector(t, &stubDetector{err: errors.New("no verdict")})
		assert.Equal(t, "utf-8", DetectEncoding(path))
	})
}

func TestDecodeTolerant(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().String("第一章 开始")
	require.NoError(t, err)

	t.Run("gbk", func(t *testing.T) {
		got, err := decodeTolerant([]byte(gbk), "gbk")
		require.NoError(t, err)
		assert.Equal(t, "第一章 开始", got)
	})

	t.Run("gbk with a dangling lead byte", func(t *testing.T) {
		got, err := decodeTolerant(append([]byte(gbk), 0x81), "gbk")
		require.NoError(t, err)
		assert.Equal(t, "第一章 开始", got)
	})

	t.Run("invalid utf-8 is dropped", func(t *testing.T) {
		got, err := decodeTolerant([]byte("a\xffb\xc3"), "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "ab", got)
	})

	t.Run("utf-8 bom is removed", func(t *testing.T) {
		got, err := decodeTolerant([]byte("\xEF\xBB\xBFhello"), "UTF-8")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("unknown name decodes as utf-8", func(t *testing.T) {
		got, err := decodeTolerant([]byte("plain"), "no-such-charset")
		require.NoError(t, err)
		assert.Equal(t, "plain", got)
	})
}
