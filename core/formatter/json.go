package formatter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/artpar/asyncdoc/core/asyncapi"
)

// JSONFormatter renders documents as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the formatter name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Description returns the formatter description.
func (f *JSONFormatter) Description() string {
	return "JSON output format"
}

// FormatDocument renders the document as JSON.
func (f *JSONFormatter) FormatDocument(w io.Writer, doc *asyncapi.Document, opts Options) error {
	var (
		out []byte
		err error
	)
	if opts.Compact {
		out, err = doc.ToJSONCompact()
	} else {
		out, err = doc.ToJSON()
	}
	if err != nil {
		return err
	}

	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// FormatError renders an error as JSON.
func (f *JSONFormatter) FormatError(w io.Writer, err error) error {
	return json.NewEncoder(w).Encode(map[string]any{"error": err.Error()})
}

func init() {
	if err := Register(NewJSONFormatter()); err != nil {
		fmt.Printf("failed to register json formatter: %v\n", err)
	}
}
