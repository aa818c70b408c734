package services

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
)

// fakeIndexClient records the last request and returns canned entries.
type fakeIndexClient struct {
	entries []driven.ListingEntry
	err     error

	gotQuery string
	gotLimit int
	gotSort  domain.SortMode
	calls    int
}

func (f *fakeIndexClient) Search(
	_ context.Context, query string, limit int, sort domain.SortMode,
) ([]driven.ListingEntry, error) {
	f.gotQuery = query
	f.gotLimit = limit
	f.gotSort = sort
	f.calls++
	return f.entries, f.err
}

// fakeFetcher returns a canned raw document.
type fakeFetcher struct {
	raw *domain.RawDocument
	err error
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*domain.RawDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	raw := *f.raw
	raw.URL = url
	return &raw, nil
}

// fakeExtractor returns canned text for its content type.
type fakeExtractor struct {
	contentType domain.ContentType
	text        string
	err         error
	calls       int
}

func (f *fakeExtractor) ContentType() domain.ContentType { return f.contentType }

func (f *fakeExtractor) Extract(_ context.Context, _ *domain.RawDocument) (string, error) {
	f.calls++
	return f.text, f.err
}

// fakeOCR returns canned recognised text.
type fakeOCR struct {
	text  string
	err   error
	calls int
}

func (f *fakeOCR) Recognise(_ context.Context, _ []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
