package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/artpar/asyncdoc/app"
	"github.com/artpar/asyncdoc/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and message definitions",
	Long: `Validate the asyncdoc configuration file.

Checks:
  - YAML syntax is valid
  - Message definitions are well formed
  - Channels reference known messages
  - The document generates without unresolved fields

Examples:
  asyncdoc validate
  asyncdoc validate --config /etc/asyncdoc/config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	fmt.Printf("Validating %s...\n\n", cfgFile)

	// Check file exists
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("  %s Config file exists\n", crossMark)
		return fmt.Errorf("config file not found: %s", cfgFile)
	}
	fmt.Printf("  %s Config file exists\n", checkMark)

	// Load and validate config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Printf("  %s Config syntax valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Printf("  %s Config syntax valid\n", checkMark)

	// Message definitions
	lib, err := app.BuildLibrary(cfg)
	if err != nil {
		fmt.Printf("  %s Message definitions valid\n", crossMark)
		return fmt.Errorf("message error: %w", err)
	}
	fmt.Printf("  %s Message definitions valid (%d messages)\n", checkMark, len(lib.Names()))

	// Channel bindings
	gen, err := app.BuildGenerator(cfg, zerolog.Nop())
	if err != nil {
		fmt.Printf("  %s Channels resolve to messages\n", crossMark)
		return fmt.Errorf("channel error: %w", err)
	}
	fmt.Printf("  %s Channels resolve to messages (%d senders, %d receivers)\n",
		checkMark, len(cfg.Channels.Senders), len(cfg.Channels.Receivers))

	// Dry-run generation
	gen.Generate()
	diags := gen.Diagnostics()
	if len(diags) > 0 {
		fmt.Printf("  %s Document generates cleanly\n", crossMark)
		for _, d := range diags {
			fmt.Printf("      %s\n", d)
		}
		return fmt.Errorf("document has %d issue(s)", len(diags))
	}
	fmt.Printf("  %s Document generates cleanly\n", checkMark)

	fmt.Println()
	fmt.Println("Configuration is valid.")
	return nil
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)
