package main

import "fmt"

// listStyles prints every style name in collection order, pausing after
// each page.
func (s *session) listStyles() {
	styles := s.db.All()
	if len(styles) == 0 {
		fmt.Fprintln(s.out, "No styles found.")
		return
	}

	fmt.Fprintf(s.out, "\nTotal styles: %d\n\n", len(styles))
	for i, st := range styles {
		fmt.Fprintf(s.out, "%3d. %s\n", i+1, st.Name)
		if s.pageSize > 0 && (i+1)%s.pageSize == 0 && i+1 < len(styles) {
			if _, err := s.in.Line("\nPress Enter to see more..."); err != nil {
				return
			}
		}
	}
}
