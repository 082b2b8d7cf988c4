package manifest

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below via errors.Is.
var (
	ErrNotFound   = errors.New("manifest not found")
	ErrParse      = errors.New("invalid manifest JSON")
	ErrMissingKey = errors.New("manifest key not found")
	ErrWrite      = errors.New("writing manifest failed")
)

// NotFoundError reports that the input manifest does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ParseError reports that the input is not a JSON object. Offset is the
// byte offset of a syntax error, or -1 when not applicable.
type ParseError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("parsing manifest %s at offset %d: %v", e.Path, e.Offset, e.Err)
	}
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// MissingKeyError reports that the key to remove is absent.
type MissingKeyError struct {
	Path string
	Key  string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q not found in manifest %s", e.Key, e.Path)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// WriteError reports that the output manifest could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing manifest %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }
