package driving

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// DocumentService provides document acquisition to external actors.
type DocumentService interface {
	// FetchText retrieves the document at url and returns its normalised
	// text, falling back to OCR when direct extraction is insufficient.
	FetchText(ctx context.Context, url string) (*domain.FetchedDocument, error)
}
