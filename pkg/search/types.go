// Package search filters file lines by substring and renders the matches.
package search

// LineRecord is one line of the searched file.
type LineRecord struct {
	// Index is the 0-based position of the line in the file.
	Index uint `json:"index"`

	// Text is the line content without its line terminator.
	Text string `json:"text"`
}

// Layout selects how a matching line is rendered.
type Layout int

const (
	// Plain renders only the line text.
	Plain Layout = iota
	// WithLineNumber renders "index:text".
	WithLineNumber
)
