package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swaybuild/swayfind/pkg/discovery"
)

// NewRootDirCommand creates and returns the root subcommand
func NewRootDirCommand() *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "root [path]",
		Short: "Find the nearest ancestor directory containing the manifest",
		Long: `Walk upward from the given path (default: current directory) and print
the first ancestor directory that directly contains the Forc manifest.
The starting path is resolved to a canonical absolute path first; a
starting path that does not exist counts as not found.

Exit code: 0 if found, 1 if no ancestor contains the file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			dir, ok := discovery.FindParentDirWithFile(start, fileName)
			return printLocated(cmd.OutOrStdout(), dir, ok, fileName)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&fileName, "file", discovery.ManifestFileName, "file name to search for")

	return cmd
}
