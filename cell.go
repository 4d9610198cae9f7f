package tabwriter

import "strconv"

// Cell is one column of one buffered line. Its text lives in the Writer's
// shared output buffer; the cell only records how many characters it spans.
type Cell struct {
	Width int
}

// String returns the width in parentheses, e.g. "(4)".
func (c Cell) String() string { return "(" + strconv.Itoa(c.Width) + ")" }
