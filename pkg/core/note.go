package core

import "strings"

// Note is the central entity of the domain.
// It is identified by its normalized title and is agnostic to storage format.
type Note struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
	Date  string `json:"date" yaml:"date"`
}

// NormalizeTitle returns the key a note is stored under: trimmed and uppercased.
func NormalizeTitle(title string) string {
	return strings.ToUpper(strings.TrimSpace(title))
}
