// minigrep prints the lines of a file that contain a query string.
//
//	minigrep [-i|--ignore-case] [--no-ignore-case] [-n|--line-number] [-m N|--max-count N] [--] <query> <filename>
package main

import (
	"os"

	"github.com/ccollicutt/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
