// Command base24gen generates a Base24 terminal color scheme from a
// background and foreground color. See cmd/base24gen/cmd for the
// generate/validate/preview subcommands.
package main

import (
	"os"

	"github.com/jonathantroyer/base24gen/cmd/base24gen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
