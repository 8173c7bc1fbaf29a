package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/artpar/asyncdoc/config"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "asyncdoc",
	Short: "AsyncAPI document generator for declared message types",
	Long: `Asyncdoc generates AsyncAPI 3.0 documents from declared message
payload types, so your event documentation tracks your type definitions
automatically.

Quick start:
  asyncdoc generate  # Generate the document from asyncdoc.yaml
  asyncdoc serve     # Serve the document over HTTP

Tooling:
  asyncdoc validate  # Validate configuration and message definitions
  asyncdoc version   # Print version information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "asyncdoc.yaml", "config file path")
}

// newLogger builds the process logger from logging config.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(output).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// loadConfig loads the config file, falling back to defaults when the file
// does not exist and no explicit path was given.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		if os.IsNotExist(err) && !cmd.Flag("config").Changed {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	}
	return config.Load(cfgFile)
}
