// Package renderer turns book query results into markdown suitable for a
// terminal markdown renderer (or for reading raw when piped).
package renderer

import (
	"fmt"
	"strings"
)

// builder is a strings.Builder with the Printf shorthand every report
// renderer in this package uses.
type builder struct {
	*strings.Builder
}

func newBuilder() builder { return builder{&strings.Builder{}} }

// Printf formats according to a format specifier and writes to the builder.
func (b builder) Printf(format string, args ...any) {
	fmt.Fprintf(b, format, args...)
}

// cell escapes the column separator so user data cannot break a table row.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
