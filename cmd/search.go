package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogscout/search-api/internal/services/blogsearch"
	"github.com/blogscout/search-api/pkg/config"
)

var (
	searchLanguage string
	searchFrom     string
	searchTo       string
	searchJSON     bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Run a one-shot blog search",
	Long: `Run a single search against the upstream blog index and print the
matched posts.

The pattern may contain boolean operators understood by the upstream
engine; quote it to keep your shell out of the way.

Example:
  blogscout-api search spotify
  blogscout-api search --language sv --from 2013-02-01T00:00:00Z "spotify AND android"
  blogscout-api search --json golang`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchLanguage, "language", "", "restrict results to a language code")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "earliest publication time (RFC 3339)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "latest publication time (RFC 3339)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	query := &blogsearch.Query{
		Pattern:  strings.Join(args, " "),
		Language: searchLanguage,
	}

	if searchFrom != "" {
		from, err := time.Parse(time.RFC3339, searchFrom)
		if err != nil {
			return fmt.Errorf("invalid --from value: %w", err)
		}
		query.StartTime = from
	}
	if searchTo != "" {
		to, err := time.Parse(time.RFC3339, searchTo)
		if err != nil {
			return fmt.Errorf("invalid --to value: %w", err)
		}
		query.EndTime = to
	}

	client := blogsearch.NewClient(blogsearch.Config{
		APIKey:    cfg.BlogSearch.APIKey,
		BaseURL:   cfg.BlogSearch.BaseURL,
		UserAgent: cfg.BlogSearch.UserAgent,
		Timeout:   cfg.BlogSearch.Timeout,
	})

	result, err := client.SearchBlocking(query)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if searchJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	fmt.Fprintf(out, "%d of %d matches (%.2fs)\n\n", len(result.Posts), result.NumberOfMatchesTotal, result.SecondsElapsed)
	for _, post := range result.Posts {
		fmt.Fprintf(out, "%s\n", post.Title)
		fmt.Fprintf(out, "  %s\n", post.URL)
		if post.Author != "" {
			fmt.Fprintf(out, "  by %s", post.Author)
		}
		if !post.Published.IsZero() {
			fmt.Fprintf(out, " (%s)", post.Published.Format("2006-01-02"))
		}
		fmt.Fprintln(out)
	}

	return nil
}
