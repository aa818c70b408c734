package html

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
)

func extract(t *testing.T, content string) string {
	t.Helper()
	text, err := New().Extract(context.Background(), &domain.RawDocument{
		URL:      "http://www.austlii.edu.au/au/cases/cth/HCA/1992/23.html",
		MIMEType: "text/html",
		Content:  []byte(content),
	})
	require.NoError(t, err)
	return text
}

func TestContentType(t *testing.T) {
	assert.Equal(t, domain.ContentHTML, New().ContentType())
}

func TestExtract_NilDocument(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExtract_ParagraphMarkers(t *testing.T) {
	judgment := `<html><body>
	<h1>Mabo v Queensland (No 2)</h1>
	<p><a name="para1"></a>The Meriam people have occupied the Murray Islands.</p>
	<p><a name="para2"></a>The common law of Australia recognises native title.</p>
	<p id="para3">The doctrine of terra nullius is rejected.</p>
	</body></html>`

	text := extract(t, judgment)

	assert.Contains(t, text, "[1] The Meriam people have occupied the Murray Islands.")
	assert.Contains(t, text, "[2] The common law of Australia recognises native title.")
	assert.Contains(t, text, "[3] The doctrine of terra nullius is rejected.")
}

func TestExtract_MarkersInOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, `<p><a name="para%d"></a>Paragraph %d text.</p>`, i, i)
	}
	b.WriteString("</body></html>")

	text := extract(t, b.String())

	last := -1
	for i := 1; i <= 5; i++ {
		idx := strings.Index(text, fmt.Sprintf("[%d]", i))
		require.GreaterOrEqual(t, idx, 0, "marker [%d] missing", i)
		assert.Greater(t, idx, last, "marker [%d] out of order", i)
		last = idx
	}
}

func TestExtract_NonParagraphAnchorsIgnored(t *testing.T) {
	text := extract(t, `<body>
		<p><a name="disp3"></a>Orders.</p>
		<p id="section2">Background.</p>
		<p id="para12a">Not a pinpoint anchor.</p>
	</body>`)

	assert.NotContains(t, text, "[")
	assert.Contains(t, text, "Orders.")
	assert.Contains(t, text, "Background.")
}

func TestExtract_DocumentOrderAndBlocks(t *testing.T) {
	text := extract(t, `<body>
		<h1>Title</h1>
		<div>First block</div>
		<div>Second block</div>
		<ul><li>Item one</li><li>Item two</li></ul>
	</body>`)

	assert.Equal(t, "Title\nFirst block\nSecond block\nItem one\nItem two", text)
}

func TestExtract_ScriptStyleRemoved(t *testing.T) {
	text := extract(t, `<html><head>
		<style>body { margin: 0 }</style>
		<script>var tracking = true;</script>
	</head><body>
		<p>Judgment text.</p>
		<noscript>Enable JavaScript</noscript>
	</body></html>`)

	assert.Equal(t, "Judgment text.", text)
}

func TestExtract_WhitespaceCollapsed(t *testing.T) {
	text := extract(t, "<body><p>spaced \t  out\n\n\n\ttext</p></body>")

	assert.Equal(t, "spaced out text", text)
}

func TestExtract_EntitiesDecoded(t *testing.T) {
	text := extract(t, "<body><p>Smith &amp; Jones &#8212; costs</p></body>")
	assert.Contains(t, text, "Smith & Jones")
}

func TestExtract_EmptyContent(t *testing.T) {
	assert.Empty(t, extract(t, ""))
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Extractor = (*Extractor)(nil)
}
