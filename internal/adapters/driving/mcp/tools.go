package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query        string `json:"query" jsonschema:"the search query, e.g. a case name or legal topic"`
	Kind         string `json:"kind" jsonschema:"document kind to search for: case or legislation"`
	Jurisdiction string `json:"jurisdiction,omitempty" jsonschema:"restrict to one Australian jurisdiction code (cth, nsw, vic, ...)"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10, max 50)"`
	Sort         string `json:"sort,omitempty" jsonschema:"result ordering: relevance, date, or auto (default auto)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Kind            string `json:"kind"`
	NeutralCitation string `json:"neutral_citation,omitempty"`
	Year            string `json:"year,omitempty"`
	Jurisdiction    string `json:"jurisdiction,omitempty"`
	Summary         string `json:"summary,omitempty"`
}

// FetchDocumentInput is the input schema for the fetch_document tool.
type FetchDocumentInput struct {
	URL string `json:"url" jsonschema:"absolute URL of the judgment or act to fetch"`
}

// FetchDocumentOutput is the output schema for the fetch_document tool.
type FetchDocumentOutput struct {
	Text        string            `json:"text"`
	ContentType string            `json:"content_type"`
	SourceURL   string            `json:"source_url"`
	OCRUsed     bool              `json:"ocr_used"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search AustLII for Australian cases or legislation",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_document",
		Description: "Fetch a judgment or act and return its plain text with [N] paragraph markers",
	}, s.handleFetchDocument)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		Kind:         domain.DocumentKind(input.Kind),
		Jurisdiction: input.Jurisdiction,
		Limit:        input.Limit,
		Sort:         domain.SortMode(input.Sort),
	}
	if opts.Kind == "" {
		opts.Kind = domain.KindCase
	}

	records, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(records)),
		Count:   len(records),
	}

	for i := range records {
		output.Results[i] = SearchResultOutput{
			Title:           records[i].Title,
			URL:             records[i].URL,
			Kind:            string(records[i].Kind),
			NeutralCitation: records[i].NeutralCitation,
			Year:            records[i].Year,
			Jurisdiction:    records[i].Jurisdiction,
			Summary:         records[i].Summary,
		}
	}

	return nil, output, nil
}

// handleFetchDocument handles the fetch_document tool invocation.
func (s *Server) handleFetchDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchDocumentInput,
) (*mcp.CallToolResult, FetchDocumentOutput, error) {
	doc, err := s.ports.Document.FetchText(ctx, input.URL)
	if err != nil {
		return nil, FetchDocumentOutput{}, err
	}

	output := FetchDocumentOutput{
		Text:        doc.Text,
		ContentType: string(doc.ContentType),
		SourceURL:   doc.SourceURL,
		OCRUsed:     doc.OCRUsed,
		Metadata:    doc.Metadata,
	}
	return nil, output, nil
}
