package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

var (
	searchKind         string
	searchJurisdiction string
	searchLimit        int
	searchSort         string
	searchJSON         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search AustLII for cases or legislation",
	Long: `Searches the AustLII full-text index and lists matching primary
sources. Journal articles and commentary are excluded.

The default "auto" sort orders party-versus-party queries (e.g.
"Mabo v Queensland") by relevance and topic queries by date.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchKind, "kind", "k", "case", "document kind: case or legislation")
	searchCmd.Flags().StringVarP(&searchJurisdiction, "jurisdiction", "j", "", "restrict to one jurisdiction code (cth, nsw, vic, ...)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().StringVar(&searchSort, "sort", "auto", "result ordering: relevance, date, or auto")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx := context.Background()
	opts := domain.SearchOptions{
		Kind:         domain.DocumentKind(searchKind),
		Jurisdiction: searchJurisdiction,
		Limit:        searchLimit,
		Sort:         domain.SortMode(searchSort),
	}

	records, err := searchService.Search(ctx, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, records)
	}

	return outputSearchTable(cmd, records)
}

func outputSearchJSON(cmd *cobra.Command, records []domain.SearchRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, records []domain.SearchRecord) error {
	if len(records) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range records {
		cmd.Printf("  [%d] %s\n", i+1, records[i].Title)
		if records[i].NeutralCitation != "" {
			cmd.Printf("      Citation: %s\n", records[i].NeutralCitation)
		}
		if records[i].Jurisdiction != "" {
			cmd.Printf("      Jurisdiction: %s\n", records[i].Jurisdiction)
		}
		cmd.Printf("      %s\n", records[i].URL)
		if records[i].Summary != "" {
			cmd.Printf("      %s\n", records[i].Summary)
		}
		cmd.Println()
	}

	return nil
}
