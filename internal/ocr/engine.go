package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure Engine implements the interface.
var _ driven.OCREngine = (*Engine)(nil)

const (
	// DefaultPdftoppmBinary rasterises PDF pages (part of poppler-utils).
	DefaultPdftoppmBinary = "pdftoppm"

	// DefaultTesseractBinary performs the recognition.
	DefaultTesseractBinary = "tesseract"

	// DefaultTimeout bounds one whole recognition run. Scanned
	// judgments run to dozens of pages, so this is generous.
	DefaultTimeout = 120 * time.Second

	// rasterDPI balances recognition quality against raster size.
	rasterDPI = "300"
)

// Config holds OCR engine settings.
type Config struct {
	// PdftoppmBinary overrides the rasteriser path.
	PdftoppmBinary string

	// TesseractBinary overrides the recogniser path.
	TesseractBinary string

	// Timeout bounds one Recognise call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Engine recognises text from image-only PDFs via subprocesses.
type Engine struct {
	pdftoppm  string
	tesseract string
	timeout   time.Duration
}

// NewEngine creates an OCR engine. The zero Config selects defaults.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		pdftoppm:  cfg.PdftoppmBinary,
		tesseract: cfg.TesseractBinary,
		timeout:   cfg.Timeout,
	}
	if e.pdftoppm == "" {
		e.pdftoppm = DefaultPdftoppmBinary
	}
	if e.tesseract == "" {
		e.tesseract = DefaultTesseractBinary
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	return e
}

// Recognise rasterises the PDF and runs recognition page by page,
// concatenating output in page order.
func (e *Engine) Recognise(ctx context.Context, pdf []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "austlii-ocr-")
	if err != nil {
		return "", &domain.OCRError{Stage: "rasterise", Err: err}
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.pdf")
	if err := os.WriteFile(input, pdf, 0600); err != nil {
		return "", &domain.OCRError{Stage: "rasterise", Err: err}
	}

	pages, err := e.rasterise(ctx, dir, input)
	if err != nil {
		return "", err
	}

	logger.Debug("ocr: recognising %d page(s)", len(pages))

	var out []string
	for _, page := range pages {
		text, err := e.recognisePage(ctx, page)
		if err != nil {
			return "", err
		}
		out = append(out, strings.TrimSpace(text))
	}

	return strings.Join(out, "\n"), nil
}

// rasterise renders each PDF page to a PNG and returns the page image
// paths in page order. pdftoppm zero-pads page numbers, so a lexical
// sort is page order.
func (e *Engine) rasterise(ctx context.Context, dir, input string) ([]string, error) {
	root := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, e.pdftoppm, "-r", rasterDPI, "-png", input, root)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &domain.OCRError{Stage: "rasterise", Err: commandError(err, &stderr)}
	}

	pages, err := filepath.Glob(root + "-*.png")
	if err != nil || len(pages) == 0 {
		return nil, &domain.OCRError{Stage: "rasterise", Err: fmt.Errorf("no pages produced")}
	}
	sort.Strings(pages)
	return pages, nil
}

// recognisePage runs the recogniser on one page image.
func (e *Engine) recognisePage(ctx context.Context, page string) (string, error) {
	cmd := exec.CommandContext(ctx, e.tesseract, page, "stdout")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &domain.OCRError{Stage: "recognise", Err: commandError(err, &stderr)}
	}
	return stdout.String(), nil
}

// commandError folds captured stderr into the subprocess error so the
// surfaced message names the actual cause, not just the exit code.
func commandError(err error, stderr *bytes.Buffer) error {
	msg := strings.TrimSpace(stderr.String())
	if msg == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, msg)
}
