package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

var fetchJSON bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Fetch a document as plain text",
	Long: `Fetches a judgment or act and prints its plain text. Pinpoint
paragraph markers like [12] are preserved so passages can be cited.

PDF documents without a usable text layer are run through OCR, which
requires pdftoppm and tesseract on the PATH.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "output document as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	doc, err := documentService.FetchText(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	if fetchJSON {
		return outputFetchJSON(cmd, doc)
	}

	if doc.OCRUsed {
		cmd.PrintErrln("Note: text recovered via OCR; accuracy may vary.")
	}
	cmd.Println(doc.Text)
	return nil
}

func outputFetchJSON(cmd *cobra.Command, doc *domain.FetchedDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
