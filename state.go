package tabwriter

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// State is a snapshot of a Writer's buffered input, for debugging.
type State struct {
	Separator    string  `json:"separator" yaml:"separator"`
	Lines        [][]int `json:"lines" yaml:"lines"` // cell widths per line
	Buffered     int     `json:"buffered" yaml:"buffered"`
	Pending      int     `json:"pending" yaml:"pending"`
	ColumnWidths []int   `json:"column_widths" yaml:"column_widths"` // from the last flush
}

// State returns a copy of the Writer's current buffered state.
func (w *Writer) State() State {
	s := State{
		Separator:    w.sep,
		Lines:        make([][]int, len(w.lines)),
		Buffered:     len(w.output),
		Pending:      len(w.pending),
		ColumnWidths: w.ColumnWidths(),
	}
	for i, line := range w.lines {
		s.Lines[i] = make([]int, len(line))
		for j, cell := range line {
			s.Lines[i][j] = cell.Width
		}
	}
	return s
}

// DumpFormat is an output format for [DumpState].
type DumpFormat string

const (
	DumpText DumpFormat = "text"
	DumpJSON DumpFormat = "json"
	DumpYAML DumpFormat = "yaml"
)

var dumpFormats = []DumpFormat{DumpText, DumpJSON, DumpYAML}

// String returns the format name.
func (f DumpFormat) String() string { return string(f) }

// DumpFormats returns all supported dump format names.
func DumpFormats() []DumpFormat {
	out := make([]DumpFormat, len(dumpFormats))
	copy(out, dumpFormats)
	return out
}

// ParseDumpFormat parses a dump format name.
func ParseDumpFormat(s string) (DumpFormat, error) {
	for _, f := range dumpFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DumpState writes s to out in format f.
func DumpState(out io.Writer, f DumpFormat, s State) error {
	switch f {
	case DumpText:
		return dumpText(out, s)
	case DumpJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case DumpYAML:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func dumpText(out io.Writer, s State) error {
	for i, line := range s.Lines {
		if _, err := fmt.Fprintln(out, "line:", i); err != nil {
			return err
		}
		for j, width := range line {
			if _, err := fmt.Fprintln(out, "cell:", j, "width:", width); err != nil {
				return err
			}
		}
	}
	return nil
}
