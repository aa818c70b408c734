package html

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor converts judgment and legislation HTML into plain text.
// Pinpoint paragraph anchors (id/name attributes like "para12") become
// inline [N] markers so paragraph numbering survives into the text.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// ContentType identifies which classification this extractor handles.
func (e *Extractor) ContentType() domain.ContentType {
	return domain.ContentHTML
}

// Extract returns the document body's text content in document order.
func (e *Extractor) Extract(_ context.Context, raw *domain.RawDocument) (string, error) {
	if raw == nil {
		return "", domain.ErrInvalidInput
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Content))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	insertParagraphMarkers(doc)

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		renderText(node, &sb)
	}

	return tidyText(sb.String()), nil
}

// insertParagraphMarkers prepends "[N] " inside every element whose
// id or name attribute is a pinpoint paragraph anchor. The anchor
// element is often empty, so the marker lands exactly where the
// paragraph starts in document order.
func insertParagraphMarkers(doc *goquery.Document) {
	doc.Find("[id], [name]").Each(func(_ int, s *goquery.Selection) {
		attr, ok := s.Attr("id")
		n, matched := "", false
		if ok {
			n, matched = domain.ParagraphNumber(attr)
		}
		if !matched {
			if attr, ok = s.Attr("name"); ok {
				n, matched = domain.ParagraphNumber(attr)
			}
		}
		if matched {
			s.PrependHtml("[" + n + "] ")
		}
	})
}

// blockTags are elements that terminate a line of rendered text.
var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "li": true, "tr": true,
	"blockquote": true, "pre": true, "table": true, "section": true,
	"article": true, "ol": true, "ul": true, "center": true,
}

// renderText walks the node tree in document order, appending text
// nodes and newlines at block boundaries.
func renderText(n *xhtml.Node, sb *strings.Builder) {
	if n.Type == xhtml.TextNode {
		// Source newlines render as spaces; only block boundaries
		// produce line breaks in the output.
		sb.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		return
	}
	if n.Type == xhtml.ElementNode && (n.Data == "br" || n.Data == "hr") {
		sb.WriteByte('\n')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(c, sb)
	}

	if n.Type == xhtml.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}

var multiSpaces = regexp.MustCompile(`[ \t\r\x{00a0}]+`)

// tidyText collapses runs of spaces, trims each line, and drops empty
// lines, preserving one newline per block boundary.
func tidyText(s string) string {
	s = multiSpaces.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
