// Command preso presents a slide deck with interactive widgets in the
// terminal.
package main

import (
	"os"

	"src.prismdeck.dev/pkg/buildinfo"
	"src.prismdeck.dev/pkg/deck"
	"src.prismdeck.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &deck.Program{})))
}
