package library

import (
	"fmt"
	"time"

	"stealth_reader/lang"
)

type Book struct {
	Name     string // file name, also the progress key
	Path     string
	Size     int64
	Modified time.Time
	Offset   int  // saved reading offset
	HasSaved bool // whether Offset came from saved progress
}

// list.Item interface for Bubble Tea
func (b Book) Title() string { return b.Name }
func (b Book) Description() string {
	progress := lang.Active().Library.Unread
	if b.HasSaved {
		progress = lang.ReadOffset(b.Offset)
	}
	return fmt.Sprintf("%s | %s", humanSize(b.Size), progress)
}
func (b Book) FilterValue() string { return b.Name }

// Annotate copies saved offsets from progress onto the matching books.
func Annotate(books []Book, progress map[string]int) []Book {
	for i := range books {
		offset, ok := progress[books[i].Name]
		books[i].Offset = offset
		books[i].HasSaved = ok
	}
	return books
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
