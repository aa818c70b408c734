package mcp

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	records []domain.SearchRecord
	err     error

	gotQuery string
	gotOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchRecord, error) {
	m.gotQuery = query
	m.gotOpts = opts
	return m.records, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	doc *domain.FetchedDocument
	err error

	gotURL string
}

func (m *mockDocumentService) FetchText(
	_ context.Context,
	url string,
) (*domain.FetchedDocument, error) {
	m.gotURL = url
	return m.doc, m.err
}
