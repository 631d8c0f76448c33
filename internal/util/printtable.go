package util

import (
	"fmt"
	"io"
	"strings"
)

// PrintTable writes the rows with each column padded to its widest cell
func PrintTable(w io.Writer, table [][]string) error {
	if len(table) == 0 {
		return nil
	}

	// Find the maximum width of each column
	maxWidths := make([]int, len(table[0]))
	for _, row := range table {
		for i, cell := range row {
			if i < len(maxWidths) && len(cell) > maxWidths[i] {
				maxWidths[i] = len(cell)
			}
		}
	}

	// Print each row
	for _, row := range table {
		var line strings.Builder
		for i, cell := range row {
			if i >= len(maxWidths) {
				break
			}
			// Pad the columns as necessary
			fmt.Fprintf(&line, "%-*s  ", maxWidths[i], cell)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}
