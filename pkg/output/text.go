package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/minigrep/pkg/search"
)

// TextFormatter writes one line per match, as grep does.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes each match as "text", or "index:text" when line numbers are
// enabled. It stops at the first write error. No matches means no output.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	layout := search.LayoutFor(report.Summary.Options)

	for _, match := range report.Matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, search.Format(match, layout)); err != nil {
			return err
		}
	}
	return nil
}
