// Package source loads the file being searched.
package source

import (
	"context"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Reader loads the whole content of a file.
type Reader interface {
	ReadFile(ctx context.Context, path string) (string, error)
}

// FileReader reads from the local file system.
type FileReader struct{}

// NewFileReader creates a Reader backed by the local file system.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadFile returns the content of path as text. Failures are reported as
// *Error, classified as NotFound, PermissionDenied, InvalidEncoding or Other.
func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return "", &Error{Kind: classify(err), Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return "", &Error{
			Kind: InvalidEncoding,
			Path: path,
			Err:  errors.Newf("invalid UTF-8 at byte offset %d", invalidOffset(data)),
		}
	}

	return string(data), nil
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return Other
	}
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}
