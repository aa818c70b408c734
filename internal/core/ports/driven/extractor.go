package driven

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// Extractor converts raw document bytes of one content type into plain
// text. The HTML extractor preserves pinpoint paragraph numbers as
// inline [N] markers; the PDF extractor reads the text layer only.
type Extractor interface {
	// ContentType identifies which classification this extractor handles.
	ContentType() domain.ContentType

	// Extract returns the document's plain text. A document with no
	// extractable text yields an empty string, not an error.
	Extract(ctx context.Context, raw *domain.RawDocument) (string, error)
}
