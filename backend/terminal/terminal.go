/*
Package terminal queries the terminal the art is printed to.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package terminal

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/term"
)

// DefaultWidth is assumed if the width of the terminal cannot be determined.
const DefaultWidth = 80

// tracer traces with key 'okanimoji.cli'.
func tracer() tracing.Trace {
	return tracing.Select("okanimoji.cli")
}

// Width returns the column count of the terminal attached to stdout, or
// DefaultWidth if stdout is not a terminal.
func Width() int {
	return WidthOf(int(os.Stdout.Fd()))
}

// WidthOf returns the column count of the terminal with file descriptor fd.
func WidthOf(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		tracer().Debugf("cannot determine terminal width: %v", err)
		return DefaultWidth
	}
	return w
}

// Fit limits a requested art width to the width of the terminal.
func Fit(requested int) int {
	if w := Width(); requested <= 0 || requested > w {
		return w
	}
	return requested
}
