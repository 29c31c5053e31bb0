package library

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/saintfish/chardet"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

const (
	// sampleSize is how much of a file the detector sees.
	sampleSize = 4096

	fallbackEncoding = "utf-8"
	gbkEncoding      = "gbk"
)

// charsetDetector is the subset of chardet.Detector used here.
type charsetDetector interface {
	DetectBest(b []byte) (*chardet.Result, error)
}

var detector charsetDetector = chardet.NewTextDetector()

// DetectEncoding guesses the text encoding of the file at path from its first
// 4096 bytes. Simplified Chinese verdicts are widened to GBK. Anything that
// cannot be determined falls back to UTF-8.
func DetectEncoding(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return fallbackEncoding
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fallbackEncoding
	}
	return detectSample(sample[:n])
}

func detectSample(sample []byte) string {
	if len(sample) == 0 {
		return fallbackEncoding
	}
	result, err := detector.DetectBest(sample)
	if err != nil || result == nil {
		return fallbackEncoding
	}
	return resolveCharset(result.Charset)
}

// resolveCharset maps a detector verdict to the encoding name used for
// decoding. GB2312 and GB18030 become GBK, which covers both.
func resolveCharset(verdict string) string {
	name := strings.TrimSpace(verdict)
	if name == "" {
		return fallbackEncoding
	}
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	switch key {
	case "gb2312", "gb18030":
		return gbkEncoding
	}
	return name
}

// lookupEncoding resolves an encoding name, preferring the WHATWG labels and
// then the IANA registry. Unknown names decode as UTF-8.
func lookupEncoding(name string) encoding.Encoding {
	if enc, err := htmlindex.Get(name); err == nil && enc != nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc
	}
	log.WithField("encoding", name).Debug("unknown encoding, decoding as utf-8")
	return unicode.UTF8
}

// decodeTolerant converts data to a UTF-8 string, dropping byte sequences the
// encoding cannot map instead of failing.
func decodeTolerant(data []byte, name string) (string, error) {
	var text string
	if strings.EqualFold(name, fallbackEncoding) || strings.EqualFold(name, "utf8") {
		text = strings.ToValidUTF8(string(data), "")
	} else {
		decoded, err := lookupEncoding(name).NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		text = string(bytes.ReplaceAll(decoded, []byte("\uFFFD"), nil))
	}
	return strings.TrimPrefix(text, "\uFEFF"), nil
}
