// Package style defines the prompt style record and its validation rules.
package style

import (
	"errors"
	"strings"
)

// Style is one reusable prompt template for AI image generation.
type Style struct {
	Name           string `json:"name"`            // Required: display name shown in menus
	Prompt         string `json:"prompt"`          // Required: template text, usually contains [prompt]
	NegativePrompt string `json:"negative_prompt"` // Optional
	ImagePath      string `json:"image_path"`      // Optional: preview thumbnail location
}

// PlaceholderToken marks where the subject text is substituted into a prompt template.
const PlaceholderToken = "[prompt]"

// Validation errors.
var (
	ErrEmptyName   = errors.New("name is required")
	ErrEmptyPrompt = errors.New("prompt is required")
)

// ValidateForSave checks the required fields before a record enters the collection.
func (s *Style) ValidateForSave() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// HasPlaceholder reports whether the prompt template contains PlaceholderToken.
// Absence is advisory; the record is still accepted.
func (s *Style) HasPlaceholder() bool {
	return strings.Contains(s.Prompt, PlaceholderToken)
}

// NameExists reports whether any style in the collection already uses the
// exact name. Duplicates are permitted, but callers warn before adding one.
func NameExists(styles []Style, name string) bool {
	for i := range styles {
		if styles[i].Name == name {
			return true
		}
	}
	return false
}
