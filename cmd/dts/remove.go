package main

import (
	"fmt"

	"github.com/dtstyler/dtstyler/internal/ui"
)

// removeStyle deletes a style after an explicit "yes" confirmation.
func (s *session) removeStyle() {
	match, ok := s.pickStyle("remove")
	if !ok {
		return
	}

	s.printStylePreview(match.Style)
	fmt.Fprintf(s.out, "\nAre you sure you want to remove %q?\n", match.Style.Name)
	if !s.in.ConfirmExact("Type 'yes' to confirm: ", "yes") {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	if _, err := s.db.RemoveAt(match.Index); err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, ui.Success(fmt.Sprintf("Removed %q", match.Style.Name)))
	if err := s.db.Save(); err != nil {
		s.reportSaveError(err)
		return
	}
	s.reportSaved()
}
