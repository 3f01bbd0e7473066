package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swaybuild/swayfind/pkg/discovery"
)

// NewNestedCommand creates and returns the nested subcommand
func NewNestedCommand() *cobra.Command {
	var fileName string

	cmd := &cobra.Command{
		Use:   "nested [path]",
		Short: "Find the nearest nested directory containing the manifest",
		Long: `Search downward from the given path (default: current directory) and
print the first strictly-nested directory containing the Forc manifest.
A manifest sitting directly in the starting directory is skipped; the
search is for a descendant project.

Exit code: 0 if found, 1 if the subtree contains no match`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := "."
			if len(args) == 1 {
				start = args[0]
			}
			dir, ok := discovery.FindNestedDirWithFile(start, fileName)
			return printLocated(cmd.OutOrStdout(), dir, ok, fileName)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&fileName, "file", discovery.ManifestFileName, "file name to search for")

	return cmd
}
