package tracelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestStepAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")

	w, err := Open(path)
	assert.Equal(t, nil, err)
	w.Step("stage %s started", "research")
	w.Step("stage %s completed", "research")
	w.Close()

	w2, err := Open(path)
	assert.Equal(t, nil, err)
	w2.Step("fallback started")
	w2.Close()

	data, err := os.ReadFile(path)
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, true, strings.HasSuffix(lines[0], "stage research started"))
	assert.Equal(t, true, strings.HasSuffix(lines[2], "fallback started"))
}

func TestStepNilWriter(t *testing.T) {
	var w *Writer
	w.Step("must not panic")
	w.Close()
}
