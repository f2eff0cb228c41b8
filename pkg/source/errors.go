package source

import "fmt"

// Kind classifies a read failure.
type Kind int

const (
	// Other covers failures that are not classified more precisely.
	Other Kind = iota
	// NotFound means the path does not exist.
	NotFound
	// PermissionDenied means the file exists but cannot be read.
	PermissionDenied
	// InvalidEncoding means the content is not valid UTF-8 text.
	InvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "file not found"
	case PermissionDenied:
		return "permission denied"
	case InvalidEncoding:
		return "invalid encoding"
	default:
		return "read failed"
	}
}

// Error is returned by FileReader when a file cannot be loaded.
// The underlying error is available through errors.Unwrap.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Sentinel errors for errors.Is; they match any *Error of the same Kind.
var (
	ErrNotFound         = &Error{Kind: NotFound}
	ErrPermissionDenied = &Error{Kind: PermissionDenied}
	ErrInvalidEncoding  = &Error{Kind: InvalidEncoding}
)

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Kind.String()
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
