package formatter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/artpar/asyncdoc/core/asyncapi"
)

// YAMLFormatter renders documents as block-style YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Name returns the formatter name.
func (f *YAMLFormatter) Name() string {
	return "yaml"
}

// Description returns the formatter description.
func (f *YAMLFormatter) Description() string {
	return "Block-style YAML output"
}

// FormatDocument renders the document as YAML.
func (f *YAMLFormatter) FormatDocument(w io.Writer, doc *asyncapi.Document, opts Options) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(doc)
}

// FormatError renders an error as YAML.
func (f *YAMLFormatter) FormatError(w io.Writer, err error) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(map[string]any{"error": err.Error()})
}

func init() {
	if err := Register(NewYAMLFormatter()); err != nil {
		fmt.Printf("failed to register yaml formatter: %v\n", err)
	}
}
