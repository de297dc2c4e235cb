package storage

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by positional operations with a bad index.
var ErrIndexOutOfRange = errors.New("style index out of range")

// ErrEmptyFile is the cause inside a ParseError when the styles file
// exists but has no content.
var ErrEmptyFile = errors.New("file is empty")

// ParseError reports a styles file that could not be read as a JSON array.
// The database that produced it is usable and empty; callers report the
// error and continue the session.
type ParseError struct {
	Path string // File that failed to load
	Err  error  // Underlying cause
}

func (e ParseError) Error() string {
	return fmt.Sprintf("loading styles from %s: %v", e.Path, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// WriteError reports a failed save. The file keeps its previous contents;
// the in-memory collection keeps the mutation.
type WriteError struct {
	Path string // File that failed to write
	Err  error  // Underlying cause
}

func (e WriteError) Error() string {
	return fmt.Sprintf("saving styles to %s: %v", e.Path, e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }
