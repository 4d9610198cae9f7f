package tabwriter

import "github.com/sirupsen/logrus"

// isEscape reports whether r ends the current cell.
func isEscape(r rune) bool { return r == '\t' || r == '\n' }

// isIllegal reports whether r may never appear in a line.
func isIllegal(r rune) bool { return r == '\v' || r == '\f' || r == '\r' }

// WriteLine buffers s as one line. Tabs and newlines end cells and are not
// part of any cell's text. A trailing escape closes the last cell without
// opening an empty one; the empty string is buffered as a single empty cell.
//
// If s contains a vertical tab, form feed, or carriage return, WriteLine
// returns an [*InvalidInputError] and the Writer is left exactly as it was
// before the call.
func (w *Writer) WriteLine(s string) error {
	mark := len(w.output)
	var line []Cell
	offset := 0
	for _, r := range s {
		switch {
		case isEscape(r):
			line = w.terminate(line)
		case isIllegal(r):
			w.output = w.output[:mark]
			w.pending = nil
			w.log.WithFields(logrus.Fields{
				"code_point": r,
				"offset":     offset,
			}).Debug("rejected line")
			return &InvalidInputError{CodePoint: r, Offset: offset}
		default:
			w.pending = append(w.pending, r)
		}
		offset++
	}
	if len(w.pending) > 0 || len(line) == 0 {
		line = w.terminate(line)
	}
	w.lines = append(w.lines, line)
	return nil
}

// terminate closes the pending cell and appends it to line.
func (w *Writer) terminate(line []Cell) []Cell {
	w.output = append(w.output, w.pending...)
	line = append(line, Cell{Width: len(w.pending)})
	w.pending = w.pending[:0]
	return line
}
