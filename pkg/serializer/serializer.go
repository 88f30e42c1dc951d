package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/inunix3/dshw/pkg/query"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// String returns the format token as used on the command line.
func (f Format) String() string {
	return string(f)
}

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	}
	return true
}

// Writer renders query results to an output stream. The delimiter joins
// values in text format; json and yaml ignore it.
type Writer struct {
	format    Format
	delimiter string
	out       io.Writer
}

// NewWriter creates a writer for the given format and delimiter.
func NewWriter(format Format, delimiter string, out io.Writer) *Writer {
	return &Writer{format: format, delimiter: delimiter, out: out}
}

// WriteFields renders field query results. Fields and values are 1:1 and
// position-matched. Text output joins the values with the delimiter; json
// and yaml emit a field-to-value mapping.
func (w *Writer) WriteFields(fields []query.Field, values []string) error {
	if len(fields) != len(values) {
		return fmt.Errorf("got %d values for %d fields", len(values), len(fields))
	}

	if w.format == FormatText {
		return w.writeJoined(values)
	}

	mapping := make(map[string]string, len(fields))
	for i, f := range fields {
		mapping[f.String()] = values[i]
	}

	return w.encode(mapping)
}

// WriteList renders an entity listing. Text output joins the names with
// the delimiter; json and yaml emit a sequence.
func (w *Writer) WriteList(values []string) error {
	if w.format == FormatText {
		return w.writeJoined(values)
	}

	return w.encode(values)
}

// WriteLine writes one already-formatted line. Template output goes
// through here and bypasses structured formats: the template itself is
// the formatting.
func (w *Writer) WriteLine(line string) error {
	_, err := fmt.Fprintln(w.out, line)
	return err
}

func (w *Writer) writeJoined(values []string) error {
	if len(values) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(w.out, strings.Join(values, w.delimiter))
	return err
}

func (w *Writer) encode(data any) error {
	switch w.format {
	case FormatJSON:
		encoded, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(encoded))
		return err
	case FormatYAML:
		encoded, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(encoded)
		return err
	default:
		return fmt.Errorf("unknown output format: %q", w.format)
	}
}
