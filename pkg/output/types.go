// Package output provides formatting and output generation for search results.
package output

import (
	"time"

	"github.com/segmentio/ksuid"

	"github.com/ccollicutt/minigrep/pkg/flags"
	"github.com/ccollicutt/minigrep/pkg/search"
)

// Report is the complete result of one search run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Matches are the matching lines in file order.
	Matches []search.LineRecord `json:"matches"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	Query   string        `json:"query"`
	Options flags.Options `json:"options"`

	// LinesScanned is the number of lines in the searched file.
	LinesScanned int `json:"lines_scanned"`

	// MatchCount is the number of lines returned.
	MatchCount int `json:"match_count"`
}

// Metadata provides context about the run.
type Metadata struct {
	// RunID uniquely identifies the run, e.g. to deduplicate webhook deliveries.
	RunID string `json:"run_id"`

	// Source is the path of the searched file.
	Source string `json:"source"`

	// ConfigFile is the configuration file used, empty for built-in defaults.
	ConfigFile string `json:"config_file,omitempty"`

	// SearchedAt is when the search finished.
	SearchedAt time.Time `json:"searched_at"`

	// Duration is how long reading and searching took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report for a finished search that started at start.
func NewReport(inv flags.Invocation, opts flags.Options, linesScanned int, matches []search.LineRecord, start time.Time) *Report {
	if matches == nil {
		matches = []search.LineRecord{}
	}
	end := time.Now()

	return &Report{
		Summary: Summary{
			Query:        inv.Query,
			Options:      opts,
			LinesScanned: linesScanned,
			MatchCount:   len(matches),
		},
		Matches: matches,
		Metadata: Metadata{
			RunID:      ksuid.New().String(),
			Source:     inv.Filename,
			SearchedAt: end,
			Duration:   end.Sub(start),
		},
	}
}

// HasMatches returns true if any line matched.
func (r *Report) HasMatches() bool {
	return r.Summary.MatchCount > 0
}
