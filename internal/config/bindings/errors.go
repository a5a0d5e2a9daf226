package bindings

import (
	"errors"
	"fmt"
)

// Load error kinds. A *LoadError matches exactly one of them with errors.Is.
var (
	// ErrFileNotFound indicates the bindings file does not exist.
	ErrFileNotFound = errors.New("bindings file not found")

	// ErrReadFailed indicates the file exists but could not be read.
	ErrReadFailed = errors.New("bindings read failed")

	// ErrUTF8 indicates the content is not valid UTF-8.
	ErrUTF8 = errors.New("bindings are not valid UTF-8")

	// ErrParse indicates a decode or schema error.
	ErrParse = errors.New("bindings parse failed")
)

// LoadError is returned by every loader entry point.
type LoadError struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Path is the file or source name.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the error's kind.
func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func loadError(kind error, path string, err error) *LoadError {
	return &LoadError{Kind: kind, Path: path, Err: err}
}
