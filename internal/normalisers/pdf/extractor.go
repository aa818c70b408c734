package pdf

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads the text layer of a PDF. Image-only PDFs, and PDFs
// whose structure cannot be decoded, yield an empty string rather than
// an error: the caller treats insufficient text as the OCR trigger, not
// as a failure.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// ContentType identifies which classification this extractor handles.
func (e *Extractor) ContentType() domain.ContentType {
	return domain.ContentPDF
}

// Extract returns the PDF's text layer, pages concatenated in order.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (text string, err error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	// The pdf library panics on some malformed cross-reference tables;
	// a broken file is "no text layer", not a failure.
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("pdf text layer unreadable: %v", r)
			text, err = "", nil
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		logger.Warn("pdf open failed: %v", err)
		return "", nil
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		logger.Warn("pdf text extraction failed: %v", err)
		return "", nil
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		logger.Warn("pdf text read failed: %v", err)
		return "", nil
	}

	return sb.String(), nil
}
