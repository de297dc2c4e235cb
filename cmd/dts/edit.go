package main

import (
	"fmt"
	"strings"

	"github.com/dtstyler/dtstyler/internal/style"
	"github.com/dtstyler/dtstyler/internal/ui"
)

// editStyle updates one style field by field. Pressing Enter keeps the
// current value of each field.
func (s *session) editStyle() {
	match, ok := s.pickStyle("edit")
	if !ok {
		return
	}

	st := match.Style
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out, ui.Title(fmt.Sprintf("EDIT STYLE #%d", match.Index+1)))
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out, "\nCurrent values (press Enter to keep current value):")

	// Name
	fmt.Fprintf(s.out, "\nCurrent name: %s\n", st.Name)
	newName, err := s.in.Line("New name: ")
	if err != nil {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	if newName != "" {
		st.Name = newName
	}

	// Prompt template
	fmt.Fprintf(s.out, "\nCurrent prompt:\n%s\n\n", st.Prompt)
	newPrompt, err := s.in.Multiline("Enter new prompt (or press Enter to keep current):")
	if err != nil {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	if newPrompt != "" {
		if !strings.Contains(newPrompt, style.PlaceholderToken) {
			fmt.Fprintln(s.out, ui.Warn(fmt.Sprintf("Your prompt doesn't contain the %s placeholder.", style.PlaceholderToken)))
		}
		st.Prompt = newPrompt
	}

	// Negative prompt; entering nothing over a non-empty value offers a clear
	fmt.Fprintf(s.out, "\nCurrent negative prompt:\n%s\n\n", orPlaceholder(st.NegativePrompt, "(empty)"))
	newNegative, err := s.in.Multiline("Enter new negative prompt (or press Enter to keep current):")
	if err != nil {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	if newNegative != st.NegativePrompt {
		if newNegative == "" && st.NegativePrompt != "" {
			if s.in.YesNo("Clear the negative prompt? (y/n): ") {
				st.NegativePrompt = ""
			}
		} else {
			st.NegativePrompt = newNegative
		}
	}

	// Image path; the suggestion follows the possibly renamed style
	suggested := style.ThumbPath(st.Name)
	fmt.Fprintf(s.out, "\nCurrent image path: %s\n", orPlaceholder(st.ImagePath, "(none)"))
	fmt.Fprintf(s.out, "Auto-generated suggestion: %s\n", suggested)
	newImage, err := s.in.Line("Enter new path, 'auto' for suggestion, or press Enter to keep current: ")
	if err != nil {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	if newImage != "" {
		if strings.EqualFold(newImage, "auto") {
			st.ImagePath = suggested
		} else {
			st.ImagePath = newImage
		}
	}

	if err := st.ValidateForSave(); err != nil {
		s.reportError(err)
		return
	}
	if err := s.db.ReplaceAt(match.Index, st); err != nil {
		s.reportError(err)
		return
	}

	fmt.Fprintln(s.out, ui.Success("Style updated"))
	if err := s.db.Save(); err != nil {
		s.reportSaveError(err)
		return
	}
	s.reportSaved()
}
