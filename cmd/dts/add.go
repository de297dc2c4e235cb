package main

import (
	"fmt"
	"strings"

	"github.com/dtstyler/dtstyler/internal/style"
	"github.com/dtstyler/dtstyler/internal/ui"
)

// addStyle walks through creating a new style and saves after an
// explicit confirmation.
func (s *session) addStyle() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out, ui.Title("ADD NEW STYLE"))
	fmt.Fprintln(s.out, ui.Separator())
	fmt.Fprintln(s.out)

	name, ok := s.collectName()
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	promptText, ok := s.collectPrompt()
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	// Optional, so exhausted input just leaves it empty
	negative, _ := s.in.Multiline("\nNegative prompt (optional):")

	imagePath, ok := s.collectImagePath(name)
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	newStyle := style.Style{
		Name:           name,
		Prompt:         promptText,
		NegativePrompt: negative,
		ImagePath:      imagePath,
	}
	if err := newStyle.ValidateForSave(); err != nil {
		s.reportError(err)
		return
	}

	s.printStylePreview(newStyle)
	if !s.in.YesNo("\nAdd this style? (y/n): ") {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	s.db.Append(newStyle)
	fmt.Fprintln(s.out, ui.Success(fmt.Sprintf("Style %q added", newStyle.Name)))
	if err := s.db.Save(); err != nil {
		s.reportSaveError(err)
		return
	}
	s.reportSaved()

	if newStyle.ImagePath != "" {
		fmt.Fprintf(s.out, "Thumbnail tip: place a preview image at %s\n", newStyle.ImagePath)
		fmt.Fprintln(s.out, ui.Dim("(the app works fine without it, thumbnails are optional)"))
	}
}

// collectName loops until a usable name arrives. A duplicate is allowed
// after an explicit confirmation.
func (s *session) collectName() (string, bool) {
	for {
		name, err := s.in.Line("Style name (required): ")
		if err != nil {
			return "", false
		}
		if name == "" {
			fmt.Fprintln(s.out, "Name cannot be empty. Please try again.")
			continue
		}
		if style.NameExists(s.db.All(), name) {
			fmt.Fprintln(s.out, ui.Warn(fmt.Sprintf("A style named %q already exists.", name)))
			if !s.in.YesNo("Continue anyway? (y/n): ") {
				continue
			}
		}
		return name, true
	}
}

// collectPrompt loops until a non-empty prompt template arrives. A
// template without the substitution placeholder needs an explicit
// confirmation.
func (s *session) collectPrompt() (string, bool) {
	for {
		text, err := s.in.Multiline(fmt.Sprintf("\nPrompt template (use %s as placeholder):", style.PlaceholderToken))
		if err != nil {
			return "", false
		}
		if text == "" {
			fmt.Fprintln(s.out, "Prompt cannot be empty. Please try again.")
			continue
		}
		if !strings.Contains(text, style.PlaceholderToken) {
			fmt.Fprintln(s.out, ui.Warn(fmt.Sprintf("Your prompt doesn't contain the %s placeholder.", style.PlaceholderToken)))
			if !s.in.YesNo("Continue anyway? (y/n): ") {
				continue
			}
		}
		return text, true
	}
}

// collectImagePath offers the derived thumbnail path with a custom
// override.
func (s *session) collectImagePath(name string) (string, bool) {
	suggested := style.ThumbPath(name)
	fmt.Fprintf(s.out, "\nAuto-generated thumbnail path: %s\n", suggested)
	custom, err := s.in.Line("Press Enter to use this, or type a custom path: ")
	if err != nil {
		return "", false
	}
	if custom == "" {
		return suggested, true
	}
	return custom, true
}
