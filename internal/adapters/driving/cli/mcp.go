package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozlaw/austlii-mcp/internal/adapters/driving/mcp"
	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

While serving, the configuration file is watched and reloaded on change.

Examples:
  # Stdio mode (default, for Claude Desktop)
  austlii mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  austlii mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "austlii": {
        "command": "/path/to/austlii",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	// Live forwarders let a configuration reload swap the underlying
	// services without restarting the server.
	ports := &mcp.Ports{
		Search:   liveSearchService{},
		Document: liveDocumentService{},
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if configStore != nil {
		go func() {
			err := configStore.Watch(ctx, func() {
				if err := rebuildServices(); err != nil {
					logger.Warn("rebuilding services after config reload: %v", err)
				}
			})
			if err != nil {
				logger.Warn("config watch unavailable: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// liveSearchService resolves the current search service on every call.
type liveSearchService struct{}

func (liveSearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchRecord, error) {
	svc := getSearchService()
	if svc == nil {
		return nil, errors.New("search service not configured")
	}
	return svc.Search(ctx, query, opts)
}

// liveDocumentService resolves the current document service on every call.
type liveDocumentService struct{}

func (liveDocumentService) FetchText(
	ctx context.Context, url string,
) (*domain.FetchedDocument, error) {
	svc := getDocumentService()
	if svc == nil {
		return nil, errors.New("document service not configured")
	}
	return svc.FetchText(ctx, url)
}
