package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/core/formatter"
)

var (
	generateFormat  string
	generateOutput  string
	generateCompact bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the AsyncAPI document",
	Long: `Generate an AsyncAPI 3.0 document from the configured message
definitions and channels.

The document is written to stdout unless --output (or output.path in the
config file) names a file. Fields that cannot be mapped to a schema are
dropped from the document and reported on stderr.

Examples:
  asyncdoc generate
  asyncdoc generate --format json --output asyncapi.json
  asyncdoc generate --config /etc/asyncdoc/config.yaml`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "output format: yaml or json (default from config)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file path (default stdout)")
	generateCmd.Flags().BoolVar(&generateCompact, "compact", false, "minimize whitespace (json only)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging)

	gen, err := app.BuildGenerator(cfg, logger)
	if err != nil {
		return fmt.Errorf("error building generator: %w", err)
	}
	doc := gen.Generate()

	for _, d := range gen.Diagnostics() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	format := generateFormat
	if format == "" {
		format = cfg.Output.Format
	}
	f, ok := formatter.Get(format)
	if !ok {
		return fmt.Errorf("unknown output format %q (available: %v)", format, formatter.List())
	}

	outPath := generateOutput
	if outPath == "" {
		outPath = cfg.Output.Path
	}

	out := os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := f.FormatDocument(out, doc, formatter.Options{Compact: generateCompact}); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}
	return nil
}
