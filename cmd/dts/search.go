package main

import (
	"fmt"

	"github.com/dtstyler/dtstyler/internal/finder"
)

// searchStyles resolves a query and lists matches with their positions
// in the collection. An empty query cancels.
func (s *session) searchStyles() {
	query, err := s.in.Line("Search query: ")
	if err != nil || query == "" {
		return
	}

	matches, err := finder.Resolve(query, s.db.All())
	if err != nil {
		fmt.Fprintf(s.out, "No styles found matching %q\n", query)
		return
	}

	fmt.Fprintf(s.out, "\nFound %d match(es):\n\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(s.out, "%3d. %s\n", m.Index+1, m.Style.Name)
	}
}
