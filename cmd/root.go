package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blogscout/search-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blogscout-api",
	Short: "BlogScout Search API server",
	Long: `BlogScout Search API - a blog search service backed by the BlogScout index

The server fronts the upstream blog search API: it validates queries,
builds the upstream request, parses the XML post stream, and keeps a
local log of executed searches.

Features:
  • Blog post search with language and publication window filters
  • Typed error reporting for upstream API failures
  • Search history log backed by sqlite
  • One-shot searches from the command line`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
