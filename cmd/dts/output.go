package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dtstyler/dtstyler/internal/style"
	"github.com/dtstyler/dtstyler/internal/ui"
)

// reportError prints a recoverable failure; control returns to the menu.
func (s *session) reportError(err error) {
	fmt.Fprintln(s.out, ui.Error(err.Error()))
}

// reportLoad announces the result of a load or reload. ParseError is not
// fatal: the session continues with an empty collection.
func (s *session) reportLoad(err error) {
	if err == nil {
		fmt.Fprintln(s.out, ui.Success(fmt.Sprintf("Loaded %d styles from %s", s.db.Len(), s.db.Path())))
		for _, w := range style.Lint(s.db.All()) {
			fmt.Fprintln(s.out, ui.Warn(w))
		}
		return
	}

	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(s.out, ui.Warn(fmt.Sprintf("No styles file at %s yet", s.db.Path())))
	} else {
		s.reportError(err)
	}
	fmt.Fprintln(s.out, "Starting with an empty collection. Saving will create the file.")
}

// reportSaved announces a successful save.
func (s *session) reportSaved() {
	fmt.Fprintln(s.out, ui.Success(fmt.Sprintf("Saved %d styles to %s", s.db.Len(), s.db.Path())))
}

// reportSaveError prints a failed save. The change is still in memory and
// rides along with the next successful save.
func (s *session) reportSaveError(err error) {
	s.reportError(err)
	fmt.Fprintln(s.out, ui.Warn("The change is kept in memory and will be written on the next successful save."))
}

// printStyleDetail renders every field of a style with its 1-based position.
func (s *session) printStyleDetail(index int, st style.Style) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintf(s.out, "Style #%d: %s\n", index+1, ui.Title(st.Name))
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintf(s.out, "%s\n%s\n", ui.Label("Prompt:"), st.Prompt)
	fmt.Fprintf(s.out, "\n%s\n%s\n", ui.Label("Negative Prompt:"), orPlaceholder(st.NegativePrompt, "(empty)"))
	fmt.Fprintf(s.out, "\n%s\n%s\n", ui.Label("Image Path:"), orPlaceholder(st.ImagePath, "(none)"))
	fmt.Fprintln(s.out, ui.Separator())
}

// printStylePreview renders a compact preview used before confirming an add.
func (s *session) printStylePreview(st style.Style) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Rule())
	fmt.Fprintln(s.out, "Preview:")
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Name:"), st.Name)
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Prompt:"), st.Prompt)
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Negative:"), orPlaceholder(st.NegativePrompt, "(empty)"))
	fmt.Fprintf(s.out, "%s %s\n", ui.Label("Image:"), orPlaceholder(st.ImagePath, "(none)"))
	fmt.Fprintln(s.out, ui.Rule())
}

// orPlaceholder substitutes a dimmed placeholder for empty optional fields.
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return ui.Dim(placeholder)
	}
	return value
}
