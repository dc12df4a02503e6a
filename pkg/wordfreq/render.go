package wordfreq

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the column width used for both the word and the count.
const DefaultWidth = 20

const filler = "."

// Render writes one line per frequency: the word left-aligned and the count
// right-aligned, each padded with dots to width runes. Words longer than
// width are written whole.
func Render(w io.Writer, freqs []Frequency, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	for _, f := range freqs {
		count := strconv.FormatUint(f.Count, 10)
		line := f.Word + pad(f.Word, width) + pad(count, width) + count
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(filler, n)
}
