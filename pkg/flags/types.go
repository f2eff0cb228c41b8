// Package flags parses minigrep's command-line tokens into search options
// and positional arguments.
package flags

// Options controls how a search is performed and rendered.
type Options struct {
	// IgnoreCase lowercases both the query and each line before matching.
	IgnoreCase bool `yaml:"ignore_case" json:"ignore_case"`

	// ShowLineNumber prefixes each result with its 0-based line index.
	ShowLineNumber bool `yaml:"line_number" json:"line_number"`

	// MaxCount caps the number of matches returned. Zero means unlimited.
	MaxCount uint `yaml:"max_count" json:"max_count"`
}

// ParsedArguments is the result of a single pass over the raw tokens.
type ParsedArguments struct {
	Options Options

	// Positionals holds non-flag tokens in the order they appeared.
	Positionals []string
}

// Invocation is the query and file a run operates on.
type Invocation struct {
	Query    string
	Filename string
}

// Invocation extracts the query and filename from the positionals.
// Positionals beyond the second are ignored.
func (p ParsedArguments) Invocation() (Invocation, error) {
	switch len(p.Positionals) {
	case 0:
		return Invocation{}, &ParseError{Kind: MissingPositional, Option: "<query>"}
	case 1:
		return Invocation{}, &ParseError{Kind: MissingPositional, Option: "<filename>"}
	}
	return Invocation{
		Query:    p.Positionals[0],
		Filename: p.Positionals[1],
	}, nil
}
