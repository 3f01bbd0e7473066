package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/swaybuild/swayfind/pkg/discovery"
)

// NewFilesCommand creates and returns the files subcommand
func NewFilesCommand() *cobra.Command {
	var relative bool

	cmd := &cobra.Command{
		Use:   "files [dir]",
		Short: "List Sway source files under a directory",
		Long: `Recursively list every Sway source file under the given directory
(default: current directory). Directories that cannot be read are
skipped rather than failing the listing, so the output may be partial
on trees with permission restrictions.

Exit code: 0 even when no source files exist (an empty project is not
an error)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return listSwayFiles(dir, relative, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&relative, "relative", false, "print paths relative to the search directory")

	return cmd
}

// listSwayFiles collects and prints source files with custom output writer (for testing)
func listSwayFiles(dir string, relative bool, output io.Writer) error {
	files := discovery.SwayFiles(dir)

	if relative {
		files = lo.Map(files, func(path string, _ int) string {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return path
			}
			return rel
		})
	}

	// The collector's order follows its work-list; sort for stable output.
	sort.Strings(files)

	for _, f := range files {
		fmt.Fprintln(output, f)
	}
	return nil
}
