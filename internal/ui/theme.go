// Package ui holds the terminal theme for the interactive session.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status indicators used in front of reported lines.
const (
	SuccessMark = "✓"
	WarnMark    = "⚠"
	ErrorMark   = "✗"
)

// SeparatorWidth is the width of horizontal rules around menus and details.
const SeparatorWidth = 60

var (
	// Core palette
	Teal  = lipgloss.Color("#00D4AA")
	Green = lipgloss.Color("#00C832")
	Gold  = lipgloss.Color("#FFD700")
	Red   = lipgloss.Color("#FF4136")
	Gray  = lipgloss.Color("#6a6a7e")
	White = lipgloss.Color("#e0e0e0")

	// Menu
	TitleStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(Gray)

	// Detail views
	LabelStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(Gray)

	// Status lines
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)
)

// Disable strips every style so output is plain text. Used for no_color
// sessions.
func Disable() {
	plain := lipgloss.NewStyle()
	TitleStyle = plain
	KeyStyle = plain
	SeparatorStyle = plain
	LabelStyle = plain
	DimStyle = plain
	SuccessStyle = plain
	WarnStyle = plain
	ErrorStyle = plain
}

// Title renders a heading.
func Title(s string) string {
	return TitleStyle.Render(s)
}

// Key renders a menu choice number.
func Key(s string) string {
	return KeyStyle.Render(s)
}

// Label renders a detail field label.
func Label(s string) string {
	return LabelStyle.Render(s)
}

// Dim renders secondary text such as hints and placeholders.
func Dim(s string) string {
	return DimStyle.Render(s)
}

// Separator renders a horizontal rule.
func Separator() string {
	return SeparatorStyle.Render(strings.Repeat("=", SeparatorWidth))
}

// Rule renders a lighter horizontal rule for previews.
func Rule() string {
	return SeparatorStyle.Render(strings.Repeat("-", SeparatorWidth))
}

// Success formats a confirmation line.
func Success(msg string) string {
	return SuccessStyle.Render(SuccessMark+" ") + msg
}

// Warn formats an advisory line.
func Warn(msg string) string {
	return WarnStyle.Render(WarnMark + " " + msg)
}

// Error formats a failure line.
func Error(msg string) string {
	return ErrorStyle.Render(ErrorMark+" error: ") + msg
}
