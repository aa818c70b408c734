package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerboseOff(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	SetVerbose(false)

	Debug("hidden %d", 1)
	Info("hidden")
	Warn("hidden")

	assert.Empty(t, buf.String())
}

func TestVerboseOn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	Debug("searching for %q", "mabo")
	Info("found %d entries", 3)
	Warn("listing parse failed")
	Request("abc123", "ocr fallback triggered")

	out := buf.String()
	assert.Contains(t, out, `[DEBUG] searching for "mabo"`)
	assert.Contains(t, out, "[INFO] found 3 entries")
	assert.Contains(t, out, "[WARN] listing parse failed")
	assert.Contains(t, out, "[REQ abc123] ocr fallback triggered")
}

func TestIsVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}
