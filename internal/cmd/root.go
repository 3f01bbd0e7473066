package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for swayfind
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swayfind",
		Short: "Locate Sway projects and source files",
		Long: `Swayfind answers two questions for build tooling: where is the nearest
Forc manifest relative to a path, and which files under a directory are
Sway sources.

Results are plain paths on stdout, one per line, so the output can be
fed directly to other tools. "Not found" is reported on stderr with a
non-zero exit code.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewFilesCommand())
	cmd.AddCommand(NewRootDirCommand())
	cmd.AddCommand(NewNestedCommand())

	return cmd
}
