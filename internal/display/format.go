// Package display formats user-facing output lines.
package display

import (
	"fmt"

	"github.com/backmassage/imgrename/internal/term"
)

// RenameLine formats one processed-file line for stdout:
//
//	<original> → <new>
//	[DRY] <original> → <new>
//
// The new name is green and the [DRY] marker yellow when colors are enabled;
// with colors off the line is exactly the plain form above.
func RenameLine(original, newName string, dry bool) string {
	line := fmt.Sprintf("%s → %s%s%s", original, term.Green, newName, term.NC)
	if dry {
		line = term.Yellow + "[DRY]" + term.NC + " " + line
	}
	return line
}
