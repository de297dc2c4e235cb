// Package config resolves where the styles file lives and how the
// interactive session behaves.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultStylesFile is the styles file used when nothing overrides it,
	// resolved against the working directory.
	DefaultStylesFile = "custom_prompt_style.json"

	// EnvStylesFile names the environment variable that overrides the
	// styles file location. A .env file in the working directory is
	// loaded before this is read.
	EnvStylesFile = "DTS_STYLES_FILE"

	// DefaultPageSize is how many list entries print between pauses.
	DefaultPageSize = 20
)

// ResolveStylesPath picks the styles file for a session. An explicit
// argument wins, then the DTS_STYLES_FILE environment variable, then
// styles_path from the global config, then DefaultStylesFile.
func ResolveStylesPath(arg string) string {
	if arg != "" {
		return ExpandTilde(arg)
	}
	if env := os.Getenv(EnvStylesFile); env != "" {
		return ExpandTilde(env)
	}
	if path := GetStylesPath(); path != "" {
		return path
	}
	return DefaultStylesFile
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}
