// Package utils contains utility functions for the lab daemon.
package utils

import (
	"fmt"
	"io"
)

// DisplayLogo prints the labd banner with version information
func DisplayLogo(w io.Writer, version string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ` ░░░░░░░░░░░░░░░░░░░
 ░█░░░█▀█░█▀▄░█▀▄░
 ░█░░░█▀█░█▀▄░█░█░
 ░▀▀▀░▀░▀░▀▀░░▀▀░░
 ░░░░░░░░░░░░░░░░░░░`)
	fmt.Fprintf(w, "\n labd v%s - lab pages and solver endpoint\n", version)
	fmt.Fprintln(w)
}
