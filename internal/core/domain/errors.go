package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidURL indicates a document URL that is not an absolute
	// http(s) URL.
	ErrInvalidURL = errors.New("invalid document URL")
)

// TransportError indicates the search index was unreachable or answered
// with a non-success status. It is terminal for the request; the caller
// owns retry policy.
type TransportError struct {
	// URL is the index request that failed.
	URL string

	// Status is the HTTP status code, or 0 for a transport-level failure.
	Status int

	// Err is the underlying cause, possibly nil when Status is set.
	Err error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("index search: status %d (%s)", e.Status, e.URL)
	}
	return fmt.Sprintf("index search: %v (%s)", e.Err, e.URL)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FetchError indicates a document URL was malformed, unreachable, or
// answered with a non-success status.
type FetchError struct {
	// URL is the document that could not be fetched.
	URL string

	// Status is the HTTP status code, or 0 for a transport-level failure.
	Status int

	// Err is the underlying cause.
	Err error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch document: status %d (%s)", e.Status, e.URL)
	}
	return fmt.Sprintf("fetch document: %v (%s)", e.Err, e.URL)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OCRError indicates the OCR fallback failed: the binary is missing,
// rasterisation failed, or recognition returned an error. It is surfaced
// rather than degraded to empty text, since an empty but plausible
// result is worse than an explicit failure for a legal-research consumer.
type OCRError struct {
	// Stage names the step that failed: "rasterise" or "recognise".
	Stage string

	// Err is the underlying cause.
	Err error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr %s: %v", e.Stage, e.Err)
}

func (e *OCRError) Unwrap() error { return e.Err }

// IsTransport checks if the error is an index transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFetch checks if the error is a document fetch failure.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsOCR checks if the error is an OCR failure.
func IsOCR(err error) bool {
	var oe *OCRError
	return errors.As(err, &oe)
}
