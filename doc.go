// Package tabwriter aligns tab separated text into columns.
//
// A [Writer] buffers lines until [Writer.Flush], then pads every column to
// the width of its widest cell:
//
//	w := tabwriter.New("|")
//	_ = w.WriteLine("Name\tAge")
//	_ = w.WriteLine("emily\t25")
//	_ = w.Flush()
//
// prints
//
//	| Name  | Age |
//	| emily | 25  |
//
// # Cells
//
// Tabs and newlines end a cell and never appear in output. Widths are counted
// in characters (runes), not terminal columns. Lines may have different cell
// counts; a short line is rendered with only its own cells.
//
// Vertical tab, form feed, and carriage return are rejected with an
// [*InvalidInputError]. A rejected line leaves no trace in the buffer.
//
// # Options
//
//   - [WithOutput] — flush destination (default os.Stdout)
//   - [WithClosing] — whether the separator is repeated after the last cell
//     (default [ClosingSeparator])
//   - [WithLogger] — logrus logger for debug entries
//
// # Streaming input
//
// [WriteLines] and [WriteChan] feed an iterator or channel of lines into a
// Writer. Output is still produced only on flush.
//
// # Debugging
//
// [Writer.State] snapshots the buffered lines and [DumpState] renders the
// snapshot as text, JSON, or YAML.
//
// # Errors
//
//   - [ErrIllegalCharacter] — matched by every [*InvalidInputError]
//   - [ErrCorruptBuffer] — cell widths and buffer length disagree at flush
//   - [ErrUnsupportedFormat] — unknown dump format or closing style
package tabwriter
