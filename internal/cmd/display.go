package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printLocated prints a located directory, coloring it only when the
// output is an interactive terminal. Absence surfaces as an error so the
// command exits non-zero.
func printLocated(output io.Writer, dir string, ok bool, fileName string) error {
	if !ok {
		return fmt.Errorf("no directory containing %s found", fileName)
	}

	green := color.New(color.FgGreen)
	if f, isFile := output.(*os.File); !isFile || !isatty.IsTerminal(f.Fd()) {
		green.DisableColor()
	}
	green.Fprintln(output, dir)
	return nil
}
