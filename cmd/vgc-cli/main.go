// Command vgc-cli is the command-line front end over the engine's
// pure-logic packages, mirroring the teacher's cmd/cli layout: a thin
// main that just delegates to the cmd package's Execute.
package main

import (
	"fmt"
	"os"

	"github.com/MSS23/vgc-mcp-sub003/cmd/vgc-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
