package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhmaterial/material-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "material-api",
	Short: "Bilingual stock media search API server",
	Long: `Material Search API - a bilingual stock media search service

Accepts Chinese search queries, translates them to English and searches
the Pixabay photo and video collections. When no API key is configured or
the upstream is unavailable, deterministic demo results are served so the
endpoint never fails visibly.

Features:
  • Chinese-to-English query translation with layered fallbacks
  • Combined photo and video search with graceful degradation
  • Server-side favorites and search history
  • Per-client rate limiting and response caching`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help don't need config
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
