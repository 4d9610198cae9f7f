package tabwriter

import (
	"fmt"
	"iter"
)

// WriteLines buffers every line from seq into w. It stops at the first
// rejected line and returns its error annotated with the 1-based line
// number; lines accepted before it stay buffered.
func WriteLines(w *Writer, seq iter.Seq[string]) error {
	n := 0
	var streamErr error
	seq(func(line string) bool {
		n++
		if err := w.WriteLine(line); err != nil {
			streamErr = fmt.Errorf("line %d: %w", n, err)
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan buffers lines received from ch into w until ch is closed.
// It is a thin wrapper around [WriteLines]. After an error the rest of ch
// is left unread.
func WriteChan(w *Writer, ch <-chan string) error {
	return WriteLines(w, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
