package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driving"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// citationScanLimit bounds how far into the body the inline citation
// detector looks. A judgment's own citation sits in the header; deeper
// matches are usually citations of other cases.
const citationScanLimit = 2000

// DocumentService acquires a document and normalises it to plain text,
// deciding between the HTML and PDF extraction paths and triggering
// the OCR fallback when the PDF text layer is insufficient.
type DocumentService struct {
	fetcher driven.DocumentFetcher
	html    driven.Extractor
	pdf     driven.Extractor
	ocr     driven.OCREngine

	// ocrThreshold is the minimum count of non-whitespace characters a
	// text layer must yield before it is trusted.
	ocrThreshold int
}

// NewDocumentService creates a new document service. A non-positive
// threshold selects domain.DefaultOCRThreshold.
func NewDocumentService(
	fetcher driven.DocumentFetcher,
	html, pdf driven.Extractor,
	ocr driven.OCREngine,
	ocrThreshold int,
) *DocumentService {
	if ocrThreshold <= 0 {
		ocrThreshold = domain.DefaultOCRThreshold
	}
	return &DocumentService{
		fetcher:      fetcher,
		html:         html,
		pdf:          pdf,
		ocr:          ocr,
		ocrThreshold: ocrThreshold,
	}
}

// FetchText retrieves the document at rawURL and returns its
// normalised text.
func (s *DocumentService) FetchText(ctx context.Context, rawURL string) (*domain.FetchedDocument, error) {
	reqID := requestID()
	logger.Request(reqID, "fetch %s", rawURL)

	raw, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	contentType := classify(raw)
	logger.Request(reqID, "classified as %s (%d bytes, declared %q)",
		contentType, len(raw.Content), raw.MIMEType)

	var text string
	ocrUsed := false

	switch contentType {
	case domain.ContentPDF:
		text, err = s.pdf.Extract(ctx, raw)
		if err != nil {
			return nil, err
		}
		if domain.NonWhitespaceLen(text) < s.ocrThreshold {
			logger.Request(reqID, "text layer below threshold (%d < %d), running ocr",
				domain.NonWhitespaceLen(text), s.ocrThreshold)
			text, err = s.ocr.Recognise(ctx, raw.Content)
			if err != nil {
				return nil, err
			}
			ocrUsed = true
		}
	default:
		text, err = s.html.Extract(ctx, raw)
		if err != nil {
			return nil, err
		}
	}

	doc := &domain.FetchedDocument{
		Text:        text,
		ContentType: contentType,
		SourceURL:   rawURL,
		OCRUsed:     ocrUsed,
		Metadata:    detectMetadata(text),
	}
	return doc, nil
}

// classify decides the extraction path: PDF when either the declared
// content type or the URL suffix says so, HTML otherwise.
func classify(raw *domain.RawDocument) domain.ContentType {
	if strings.Contains(strings.ToLower(raw.MIMEType), "application/pdf") {
		return domain.ContentPDF
	}
	if u, err := url.Parse(raw.URL); err == nil {
		if strings.HasSuffix(strings.ToLower(u.Path), ".pdf") {
			return domain.ContentPDF
		}
	}
	return domain.ContentHTML
}

// detectMetadata scans the head of the body for a neutral citation.
func detectMetadata(text string) map[string]string {
	head := text
	if len(head) > citationScanLimit {
		head = head[:citationScanLimit]
	}

	citation, year := domain.ExtractNeutralCitation(head)
	if citation == "" {
		return nil
	}
	return map[string]string{
		"citation": citation,
		"year":     year,
	}
}
