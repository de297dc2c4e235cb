// Package storage owns the styles collection and its file synchronization.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtstyler/dtstyler/internal/style"
)

// Database is the single in-memory copy of a styles file. All mutation
// goes through its methods; mutating methods never touch the file, so a
// caller composes a mutation with Save before handing control back to
// the user.
type Database struct {
	path   string
	styles []style.Style
}

// Open loads the styles file at path. On a load failure the returned
// Database is still usable with an empty collection and the error says
// what went wrong; callers report it and continue.
func Open(path string) (*Database, error) {
	db := &Database{path: path}
	err := db.Reload()
	return db, err
}

// Path returns the styles file this database syncs with.
func (db *Database) Path() string { return db.path }

// Reload discards the in-memory collection and re-reads the file.
// On failure the collection is left empty.
func (db *Database) Reload() error {
	db.styles = nil

	data, err := os.ReadFile(db.path)
	if err != nil {
		return ParseError{Path: db.path, Err: err}
	}
	if strings.TrimSpace(string(data)) == "" {
		return ParseError{Path: db.path, Err: ErrEmptyFile}
	}

	var styles []style.Style
	if err := json.Unmarshal(data, &styles); err != nil {
		return ParseError{Path: db.path, Err: err}
	}

	db.styles = styles
	return nil
}

// Save writes the whole collection back to the styles file atomically:
// encode to a temp file in the target directory, then rename over the
// original. A failed save leaves the previous file intact.
func (db *Database) Save() error {
	dir := filepath.Dir(db.path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return WriteError{Path: db.path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(Encode(db.styles)); err != nil {
		tmpFile.Close()
		return WriteError{Path: db.path, Err: fmt.Errorf("writing temp file: %w", err)}
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return WriteError{Path: db.path, Err: fmt.Errorf("syncing temp file: %w", err)}
	}
	if err := tmpFile.Close(); err != nil {
		return WriteError{Path: db.path, Err: fmt.Errorf("closing temp file: %w", err)}
	}

	if err := os.Rename(tmpPath, db.path); err != nil {
		return WriteError{Path: db.path, Err: fmt.Errorf("replacing file: %w", err)}
	}

	success = true
	return nil
}

// Len returns the number of styles in the collection.
func (db *Database) Len() int { return len(db.styles) }

// At returns the style at index i (0-based).
func (db *Database) At(i int) (style.Style, error) {
	if i < 0 || i >= len(db.styles) {
		return style.Style{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return db.styles[i], nil
}

// All returns a copy of the collection in file order.
func (db *Database) All() []style.Style {
	out := make([]style.Style, len(db.styles))
	copy(out, db.styles)
	return out
}

// Append adds a style at the end of the collection.
func (db *Database) Append(s style.Style) {
	db.styles = append(db.styles, s)
}

// ReplaceAt overwrites the style at index i.
func (db *Database) ReplaceAt(i int, s style.Style) error {
	if i < 0 || i >= len(db.styles) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	db.styles[i] = s
	return nil
}

// RemoveAt deletes and returns the style at index i, shifting later
// entries down.
func (db *Database) RemoveAt(i int) (style.Style, error) {
	if i < 0 || i >= len(db.styles) {
		return style.Style{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	removed := db.styles[i]
	db.styles = append(db.styles[:i], db.styles[i+1:]...)
	return removed, nil
}
