package tabwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Flush writes every buffered line with its columns padded to a common width,
// then clears the buffered lines so the Writer can take a new batch. The
// width table is recomputed from this batch alone and stays readable through
// [Writer.ColumnWidths] until the next flush.
//
// Each cell is rendered as the separator, a space, the cell text padded to
// its column width, and a space. With [ClosingSeparator] the last cell of a
// line is followed by one more separator and space. Lines are separated by a
// newline and the output ends with one.
//
// The buffer is reset even when writing fails.
func (w *Writer) Flush() error {
	defer w.reset()

	w.widths = computeWidths(w.lines)

	var sb strings.Builder
	if err := w.render(&sb); err != nil {
		return err
	}
	w.log.WithFields(logrus.Fields{
		"lines":   len(w.lines),
		"columns": len(w.widths),
	}).Debug("flushed table")
	_, err := io.WriteString(w.out, sb.String())
	return err
}

func computeWidths(lines [][]Cell) []int {
	var widths []int
	for _, line := range lines {
		for i, cell := range line {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if cell.Width > widths[i] {
				widths[i] = cell.Width
			}
		}
	}
	return widths
}

func (w *Writer) render(sb *strings.Builder) error {
	pos := 0
	for lidx, line := range w.lines {
		if lidx > 0 {
			sb.WriteString("\n")
		}
		for i, cell := range line {
			text, err := w.span(pos, cell.Width)
			if err != nil {
				return fmt.Errorf("line %d, cell %d: %w", lidx+1, i, err)
			}
			pos += cell.Width
			sb.WriteString(w.sep)
			sb.WriteString(" ")
			sb.WriteString(padCell(text, w.widths[i]))
			sb.WriteString(" ")
			if i == len(line)-1 && w.closing == ClosingSeparator {
				sb.WriteString(w.sep)
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("\n")
	return nil
}

// span returns n characters of the output buffer starting at pos.
func (w *Writer) span(pos, n int) ([]rune, error) {
	if pos < 0 || n < 0 || pos+n > len(w.output) {
		return nil, fmt.Errorf("%w: span [%d:%d] of %d", ErrCorruptBuffer, pos, pos+n, len(w.output))
	}
	return w.output[pos : pos+n], nil
}

func padCell(text []rune, width int) string {
	pad := width - len(text)
	if pad <= 0 {
		return string(text)
	}
	return string(text) + strings.Repeat(" ", pad)
}
