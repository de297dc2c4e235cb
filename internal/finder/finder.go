// Package finder resolves free-text queries against the styles collection.
package finder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dtstyler/dtstyler/internal/style"
)

// Lookup errors.
var (
	ErrNotFound  = errors.New("no styles match")
	ErrAmbiguous = errors.New("query matches more than one style")
)

// Match pairs a matched style with its position in the collection.
type Match struct {
	Index int // 0-based position in the collection
	Style style.Style
}

// Resolve finds the styles a query refers to. A query that parses as an
// integer between 1 and len(styles) selects exactly that entry and skips
// text matching. Anything else, including integers outside that range,
// is a case-insensitive substring match on names; matches come back in
// collection order, never re-ranked. Zero matches is ErrNotFound.
func Resolve(query string, styles []style.Style) ([]Match, error) {
	query = strings.TrimSpace(query)

	if n, err := strconv.Atoi(query); err == nil && n >= 1 && n <= len(styles) {
		return []Match{{Index: n - 1, Style: styles[n-1]}}, nil
	}

	needle := strings.ToLower(query)
	var matches []Match
	for i, s := range styles {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			matches = append(matches, Match{Index: i, Style: s})
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return matches, nil
}

// ResolveOne resolves a query that must identify exactly one style.
// Multiple matches is ErrAmbiguous; interactive callers use Resolve and
// let the user pick instead.
func ResolveOne(query string, styles []style.Style) (Match, error) {
	matches, err := Resolve(query, styles)
	if err != nil {
		return Match{}, err
	}
	if len(matches) > 1 {
		return Match{}, fmt.Errorf("%w: %q matches %d styles", ErrAmbiguous, query, len(matches))
	}
	return matches[0], nil
}
