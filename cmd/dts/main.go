// Package main provides the dts CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/dtstyler/dtstyler/internal/config"
	"github.com/dtstyler/dtstyler/internal/ui"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dts [styles-file]",
	Short: "Interactive editor for AI image prompt styles",
	Long: `dts manages the JSON style collection consumed by AI image
generation frontends. It runs a numbered menu over a single styles file:
list, search, view, add, edit, remove, and reload.

The styles file defaults to custom_prompt_style.json in the working
directory. Override it with an argument, the DTS_STYLES_FILE environment
variable (a .env file is honored), or styles_path in
~/.config/dts/config.yml.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runSession,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}

func runSession(cmd *cobra.Command, args []string) error {
	// .env can carry DTS_STYLES_FILE
	_ = godotenv.Load()

	if _, err := config.LoadGlobalConfig(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Warn(fmt.Sprintf("ignoring global config: %v", err)))
	}
	if config.GetNoColor() {
		ui.Disable()
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	path := config.ResolveStylesPath(arg)

	sess := newSession(path, os.Stdin, os.Stdout)
	sess.run()
	return nil
}
