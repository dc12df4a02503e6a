// Package wordfreq counts how often each word occurs in a text.
package wordfreq

import (
	"sort"
	"strings"
)

// Frequency is the number of occurrences of a lowercased word.
type Frequency struct {
	Word  string
	Count uint64
}

// Analyse splits text on whitespace, lowercases every token and counts them.
// The result is ordered by descending count, then by word.
func Analyse(text string) []Frequency {
	counts := make(map[string]uint64)
	for _, word := range strings.Fields(text) {
		counts[strings.ToLower(word)]++
	}

	freqs := make([]Frequency, 0, len(counts))
	for word, count := range counts {
		freqs = append(freqs, Frequency{Word: word, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Word < freqs[j].Word
	})
	return freqs
}

// Total returns the sum of all counts, which equals the number of tokens analysed.
func Total(freqs []Frequency) uint64 {
	var total uint64
	for _, f := range freqs {
		total += f.Count
	}
	return total
}
