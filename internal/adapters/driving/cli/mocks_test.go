package cli

import (
	"context"
	"errors"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// mockSearchService returns canned records.
type mockSearchService struct {
	records []domain.SearchRecord
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context, _ string, _ domain.SearchOptions,
) ([]domain.SearchRecord, error) {
	return m.records, m.err
}

// mockSearchServiceError always fails.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(
	_ context.Context, _ string, _ domain.SearchOptions,
) ([]domain.SearchRecord, error) {
	return nil, errors.New("index unavailable")
}

// mockDocumentService returns a canned document.
type mockDocumentService struct {
	doc *domain.FetchedDocument
	err error
}

func (m *mockDocumentService) FetchText(
	_ context.Context, _ string,
) (*domain.FetchedDocument, error) {
	return m.doc, m.err
}

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldSearch := searchService
	oldDocument := documentService

	searchService = &mockSearchService{
		records: []domain.SearchRecord{
			{
				Title:           "Mabo v Queensland (No 2) [1992] HCA 23",
				URL:             "http://www.austlii.edu.au/au/cases/cth/HCA/1992/23.html",
				Kind:            domain.KindCase,
				NeutralCitation: "[1992] HCA 23",
				Year:            "1992",
				Jurisdiction:    "cth",
				Summary:         "native title",
				SourceName:      domain.SourceName,
			},
		},
	}
	documentService = &mockDocumentService{
		doc: &domain.FetchedDocument{
			Text:        "[1] The appellant was convicted.",
			ContentType: domain.ContentHTML,
			SourceURL:   "http://www.austlii.edu.au/au/cases/cth/HCA/1992/23.html",
		},
	}

	return func() {
		searchService = oldSearch
		documentService = oldDocument
	}
}
