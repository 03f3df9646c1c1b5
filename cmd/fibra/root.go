package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fibra",
	Short: "Fibra parses token sequences and annotates derivation trees",
	Long: `Fibra builds binary derivation trees over token sequences and computes
annotations compositionally with a pluggable fibre: probability
distributions, embedding vectors, proof obligations, or BM25 relevance
scores.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger creates the command logger. It writes to Stderr so stdout
// stays reserved for command output and exports.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
