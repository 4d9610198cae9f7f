package tabwriter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for programmatic error handling.
var (
	ErrIllegalCharacter  = errors.New("illegal character")
	ErrCorruptBuffer     = errors.New("corrupt output buffer")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// InvalidInputError reports an illegal character passed to [Writer.WriteLine].
// It matches [ErrIllegalCharacter] under [errors.Is].
type InvalidInputError struct {
	CodePoint rune
	Offset    int // rune offset within the rejected line
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("illegal character given: %#x at offset %d", e.CodePoint, e.Offset)
}

// Is reports whether target is [ErrIllegalCharacter].
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrIllegalCharacter
}

// Closing controls what follows the last cell of every rendered line.
type Closing int

const (
	ClosingSeparator Closing = iota // separator and a space, repeated after the last cell
	ClosingNone                     // nothing after the last cell's trailing space
)

// String returns the closing style name.
func (c Closing) String() string {
	switch c {
	case ClosingSeparator:
		return "separator"
	case ClosingNone:
		return "none"
	default:
		return fmt.Sprintf("Closing(%d)", int(c))
	}
}

// ParseClosing parses a closing style name as returned by [Closing.String].
func ParseClosing(s string) (Closing, error) {
	for _, c := range []Closing{ClosingSeparator, ClosingNone} {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: closing %q", ErrUnsupportedFormat, s)
}

// Option configures a [Writer].
type Option func(*Writer)

// WithOutput sets the flush destination. Default: os.Stdout.
func WithOutput(out io.Writer) Option {
	return func(w *Writer) { w.out = out }
}

// WithClosing sets the closing style. Default: [ClosingSeparator].
func WithClosing(c Closing) Option {
	return func(w *Writer) { w.closing = c }
}

// WithLogger sets a logger for debug entries. Default: discard. A nil logger
// is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// Writer buffers tab separated lines and renders them as aligned columns
// on [Writer.Flush]. A Writer is not safe for concurrent use.
type Writer struct {
	sep     string
	out     io.Writer
	closing Closing
	log     logrus.FieldLogger

	output  []rune // text of every terminated cell, in emission order
	pending []rune
	lines   [][]Cell
	widths  []int // last flush only
}

// New returns a Writer that separates columns with sep. The separator is
// used verbatim.
func New(sep string, opts ...Option) *Writer {
	w := &Writer{
		sep: sep,
		out: os.Stdout,
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// ColumnWidths returns a copy of the width table computed by the most recent
// flush, or nil before the first one.
func (w *Writer) ColumnWidths() []int {
	if w.widths == nil {
		return nil
	}
	out := make([]int, len(w.widths))
	copy(out, w.widths)
	return out
}

func (w *Writer) reset() {
	w.output = nil
	w.pending = nil
	w.lines = nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
