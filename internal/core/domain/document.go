package domain

// ContentType classifies a fetched resource.
type ContentType string

const (
	// ContentHTML is a rendered HTML document.
	ContentHTML ContentType = "html"

	// ContentPDF is a PDF document.
	ContentPDF ContentType = "pdf"
)

// RawDocument is the opaque payload returned by a document fetcher
// before any text extraction.
type RawDocument struct {
	// URL is the location the bytes were fetched from.
	URL string

	// MIMEType is the declared Content-Type, possibly empty.
	MIMEType string

	// Content is the raw response body.
	Content []byte
}

// DefaultOCRThreshold is the text-sufficiency floor: when direct PDF
// extraction yields fewer non-whitespace characters than this, the
// text layer is treated as missing and OCR runs instead. Real-world
// text layers vary widely in density, so deployments can override it.
const DefaultOCRThreshold = 100

// NonWhitespaceLen counts the characters that remain after whitespace
// normalisation. It is the measure the sufficiency threshold applies to.
func NonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			n++
		}
	}
	return n
}

// FetchedDocument is the result of document acquisition: normalised
// plain text with pinpoint paragraph markers preserved as inline [N]
// tokens. Constructed fresh per request and never persisted.
type FetchedDocument struct {
	// Text is the extracted plain text.
	Text string

	// ContentType records which extraction path produced the text.
	ContentType ContentType

	// SourceURL is the URL requested, echoed back unmodified.
	SourceURL string

	// OCRUsed is true only when the OCR fallback produced the text.
	OCRUsed bool

	// Metadata holds auxiliary extracted fields, such as a neutral
	// citation detected inside the body.
	Metadata map[string]string
}
