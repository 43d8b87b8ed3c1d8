// Command tsexport walks a Rust crate's source tree and emits
// TypeScript declaration files for every entry-tagged type it can
// reach.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/oakmoss/tsexport/internal/config"
	"github.com/oakmoss/tsexport/internal/driver"
	"github.com/oakmoss/tsexport/internal/logging"
)

var (
	inputDir   string
	outputDir  string
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tsexport",
	Short: "Export TypeScript declarations for entry-tagged Rust types",
	Long: "tsexport scans a Rust crate's source tree for entry-tagged structs and\n" +
		"enums, resolves their cross-module dependencies, and writes matching\n" +
		"TypeScript declaration files to the output directory. Existing files\n" +
		"under the output directory are appended to, never cleared.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputDir, "input", "i", "", "project root directory (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for .d.ts files (required)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to tsexport.toml (default: <input>/tsexport.toml if present)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "raise log level to debug")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

func run(cmd *cobra.Command, _ []string) error {
	level := ""
	if verbose {
		level = "debug"
	}
	logger := logging.New(level)
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx := context.Background()
	exporter, err := driver.New(ctx, cfg, inputDir, outputDir, logger)
	if err != nil {
		return err
	}

	return exporter.Run(ctx)
}

// loadConfig resolves --config, falling back to <input>/tsexport.toml
// if present and otherwise proceeding with an empty Config.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		candidate := filepath.Join(inputDir, "tsexport.toml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path == "" {
		return &config.Config{}, nil
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
