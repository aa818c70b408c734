package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for AustLII resources.
	uriScheme = "austlii://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the recognised jurisdiction codes, so a
	// client can populate the search tool's jurisdiction argument.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "jurisdictions",
		Name:        "jurisdictions",
		Description: "Australian jurisdiction codes accepted by the search tool",
		MIMEType:    "application/json",
	}, s.handleJurisdictionsResource)
}

// handleJurisdictionsResource returns the known jurisdiction codes.
func (s *Server) handleJurisdictionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(domain.Jurisdictions(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling jurisdictions: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
