package driven

import "context"

// OCREngine recognises text from PDFs whose text layer is missing or
// near-empty. Implementations typically shell out to external binaries;
// they must honour ctx cancellation and bound their own duration.
type OCREngine interface {
	// Recognise rasterises the PDF and returns recognised text with
	// per-page output concatenated in page order. Failures surface as
	// *domain.OCRError; recognition is never silently degraded to
	// empty text.
	Recognise(ctx context.Context, pdf []byte) (string, error)
}
