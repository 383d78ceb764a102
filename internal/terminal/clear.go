// Package terminal provides the interactive terminal helpers used by the
// learnhub commands: prompting for input and clearing echoed lines.
package terminal

import (
	"fmt"
	"io"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the current
// terminal width, then moves up and clears each line.
//
// Parameters:
//   - w: where the escape sequences are written (normally os.Stdout)
//   - textLength: The total number of characters in the text to clear (prompt + user input)
func ClearPreviousLines(w io.Writer, textLength int) {
	termWidth := 80 // default fallback
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := max(int(math.Ceil(float64(textLength)/float64(termWidth))), 1)

	// After Enter, cursor is on a NEW line below the input.
	linesToClear := totalLines + 1

	for i := range linesToClear {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
