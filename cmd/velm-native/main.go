package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/novalym/velm-native/internal/config"
	"github.com/novalym/velm-native/internal/lang"
	"github.com/novalym/velm-native/internal/parser"
)

var version = "dev"

var (
	flagLogLevel string

	// cfg is loaded from .velmconfig in the working directory before any
	// subcommand runs.
	cfg = config.Default()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "velm-native",
	Short:         "Native scanning, hashing and structural query engine",
	Long:          "velm-native scans source trees, classifies and hashes files, measures entropy, and runs tree-sitter queries across many languages. Results are printed as JSON.",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error (default from .velmconfig, else info)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(entropyCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads config, installs the logger and applies engine settings.
func setup(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}
	cfg = config.Load(wd)

	level := cfg.EffectiveLogLevel()
	if flagLogLevel != "" {
		level = config.ParseLevel(flagLogLevel)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if err := parser.SetQueryCacheSize(cfg.EffectiveCacheSize()); err != nil {
		return err
	}
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput returns the contents of the file named by args[0], or stdin when
// no argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, nil
}

// resolveLanguage returns the --lang value, or the language registered for
// the input file's extension.
func resolveLanguage(flag string, args []string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if len(args) > 0 && args[0] != "-" {
		if l, ok := lang.LanguageForExtension(filepath.Ext(args[0])); ok {
			return string(l), nil
		}
		return "", fmt.Errorf("cannot infer language from %q; pass --lang", args[0])
	}
	return "", fmt.Errorf("--lang is required when reading stdin")
}
