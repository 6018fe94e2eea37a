// Package main provides the relevance_agent CLI for resume relevance scoring.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "relevance_agent",
	Short: "Resume relevance scoring engine",
	Long:  "Relevance agent scores parsed resumes against job descriptions, combining keyword matching, semantic similarity, experience analysis, and skill/certification coverage into an explainable 0-100 score.",
}

var (
	configPath string
	verbose    bool
	jsonLog    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
