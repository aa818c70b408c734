// Package cli provides the command-line interface adapter. Commands
// wire configuration and connectors into the core services and render
// results for the terminal.
package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ozlaw/austlii-mcp/internal/adapters/driven/config/file"
	"github.com/ozlaw/austlii-mcp/internal/connectors/austlii"
	"github.com/ozlaw/austlii-mcp/internal/connectors/web"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driving"
	"github.com/ozlaw/austlii-mcp/internal/core/services"
	"github.com/ozlaw/austlii-mcp/internal/logger"
	"github.com/ozlaw/austlii-mcp/internal/normalisers/html"
	"github.com/ozlaw/austlii-mcp/internal/normalisers/pdf"
	"github.com/ozlaw/austlii-mcp/internal/ocr"
)

// version is the CLI version, overridable at link time.
var version = "0.1.0"

var (
	verbose   bool
	configDir string
)

// Services wired by initServices. Tests inject fakes directly.
// servicesMu guards the service vars against a concurrent rebuild
// during serve-mode config reloads.
var (
	servicesMu      sync.RWMutex
	configStore     driven.ConfigStore
	searchService   driving.SearchService
	documentService driving.DocumentService
)

var rootCmd = &cobra.Command{
	Use:   "austlii",
	Short: "Search AustLII and fetch Australian legal documents",
	Long: `Research tooling for Australian primary legal sources.

Searches the AustLII full-text index for cases and legislation, and
fetches judgments or acts as plain text with pinpoint paragraph markers
preserved. Scanned PDF judgments fall back to OCR automatically.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.austlii)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func getSearchService() driving.SearchService {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	return searchService
}

func getDocumentService() driving.DocumentService {
	servicesMu.RLock()
	defer servicesMu.RUnlock()
	return documentService
}

// initServices builds the service graph from configuration. Services
// already set (by tests) are left in place.
func initServices() error {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	if searchService != nil && documentService != nil {
		return nil
	}
	return buildServices()
}

// rebuildServices rewires the service graph from current configuration.
// Called after a config reload in serve mode.
func rebuildServices() error {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	return buildServices()
}

// buildServices constructs the adapters and services. Caller must hold
// servicesMu.
func buildServices() error {
	store := configStore
	if store == nil {
		var err error
		store, err = file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		configStore = store
	}

	client, err := austlii.NewClient(austlii.Config{
		BaseURL: store.GetString(file.KeyBaseURL),
		Timeout: time.Duration(store.GetInt(file.KeyTimeoutSeconds)) * time.Second,
		RateLimit: austlii.RateLimitConfig{
			RequestsPerSecond: store.GetFloat(file.KeyRatePerSecond),
			BurstSize:         store.GetInt(file.KeyRateBurst),
		},
	})
	if err != nil {
		return fmt.Errorf("creating index client: %w", err)
	}

	engine := ocr.NewEngine(ocr.Config{
		PdftoppmBinary:  store.GetString(file.KeyOCRPdftoppm),
		TesseractBinary: store.GetString(file.KeyOCRTesseract),
	})

	searchService = services.NewSearchService(client)
	documentService = services.NewDocumentService(
		web.NewFetcher(web.Config{}),
		html.New(),
		pdf.New(),
		engine,
		store.GetInt(file.KeyOCRThreshold),
	)
	return nil
}
