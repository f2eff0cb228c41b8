package flags

import "fmt"

// Kind classifies a ParseError.
type Kind int

const (
	// UnknownOption is returned for a short or long flag the parser does not recognize.
	UnknownOption Kind = iota + 1

	// InvalidMaxCount is returned when -m/--max-count has a missing or non-numeric value.
	InvalidMaxCount

	// UnexpectedValue is returned when a long flag that takes no value is given one with '='.
	UnexpectedValue

	// MissingPositional is returned when the query or filename is absent.
	MissingPositional
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case UnknownOption:
		return "unknown option"
	case InvalidMaxCount:
		return "invalid max count"
	case UnexpectedValue:
		return "unexpected value"
	case MissingPositional:
		return "missing positional argument"
	default:
		return "parse error"
	}
}

// ParseError describes why a command line could not be turned into an Invocation.
type ParseError struct {
	Kind Kind

	// Option is the offending flag as typed ("-z", "--max-count") or, for
	// MissingPositional, the name of the absent argument.
	Option string

	// Value is the rejected value, if any.
	Value string
}

// Sentinel errors for use with errors.Is. They match any ParseError of the same Kind.
var (
	ErrUnknownOption     = &ParseError{Kind: UnknownOption}
	ErrInvalidMaxCount   = &ParseError{Kind: InvalidMaxCount}
	ErrUnexpectedValue   = &ParseError{Kind: UnexpectedValue}
	ErrMissingPositional = &ParseError{Kind: MissingPositional}
)

func (e *ParseError) Error() string {
	switch {
	case e.Option == "":
		return e.Kind.String()
	case e.Kind == InvalidMaxCount && e.Value == "":
		return fmt.Sprintf("%s: %s requires a value", e.Kind, e.Option)
	case e.Kind == InvalidMaxCount:
		return fmt.Sprintf("%s: %q for %s is not a non-negative integer", e.Kind, e.Value, e.Option)
	case e.Kind == UnexpectedValue:
		return fmt.Sprintf("%s: %s does not take a value (got %q)", e.Kind, e.Option, e.Value)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Option)
	}
}

// Is reports whether target is a ParseError of the same Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
