package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveStylesPath(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	// Save and restore env
	origEnv := os.Getenv(EnvStylesFile)
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv(EnvStylesFile, origEnv)
		os.Setenv("XDG_CONFIG_HOME", origXDG)
	}()

	tmpDir := t.TempDir()
	writeGlobalConfig(t, tmpDir, "styles_path: /from/config/styles.json\n")
	os.Setenv("XDG_CONFIG_HOME", tmpDir)
	os.Setenv(EnvStylesFile, "/from/env/styles.json")

	// Explicit argument wins over everything
	if got := ResolveStylesPath("/from/arg/styles.json"); got != "/from/arg/styles.json" {
		t.Errorf("ResolveStylesPath(arg) = %q, want the argument", got)
	}

	// Without an argument, the environment variable wins
	if got := ResolveStylesPath(""); got != "/from/env/styles.json" {
		t.Errorf("ResolveStylesPath(\"\") = %q, want env value", got)
	}

	// Without arg or env, the global config wins
	os.Setenv(EnvStylesFile, "")
	if got := ResolveStylesPath(""); got != "/from/config/styles.json" {
		t.Errorf("ResolveStylesPath(\"\") = %q, want config value", got)
	}

	// With nothing set, the default file name is used
	ResetGlobalConfigCache()
	os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := ResolveStylesPath(""); got != DefaultStylesFile {
		t.Errorf("ResolveStylesPath(\"\") = %q, want %q", got, DefaultStylesFile)
	}
}

func TestResolveStylesPathExpandsTilde(t *testing.T) {
	ResetGlobalConfigCache()
	defer ResetGlobalConfigCache()

	origEnv := os.Getenv(EnvStylesFile)
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		os.Setenv(EnvStylesFile, origEnv)
		os.Setenv("XDG_CONFIG_HOME", origXDG)
	}()
	os.Setenv("XDG_CONFIG_HOME", t.TempDir())
	os.Setenv(EnvStylesFile, "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	want := filepath.Join(home, "styles.json")
	if got := ResolveStylesPath("~/styles.json"); got != want {
		t.Errorf("ResolveStylesPath(~) = %q, want %q", got, want)
	}

	os.Setenv(EnvStylesFile, "~/env-styles.json")
	want = filepath.Join(home, "env-styles.json")
	if got := ResolveStylesPath(""); got != want {
		t.Errorf("ResolveStylesPath() from env = %q, want %q", got, want)
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/styles.json", filepath.Join(home, "styles.json")},
		{"~", home},
		{"/absolute/path.json", "/absolute/path.json"},
		{"relative/path.json", "relative/path.json"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExpandTilde(tt.input); got != tt.want {
			t.Errorf("ExpandTilde(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
