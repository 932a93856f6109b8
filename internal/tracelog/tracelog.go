// Package tracelog appends a step-by-step orchestration trace to a file.
// The file is write-only: nothing in the process reads it back, and a
// trace failure never fails the run.
package tracelog

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

type Writer struct {
	f *os.File
}

func Open(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace log: %w", err)
	}
	return &Writer{f: f}, nil
}

// Step records one timestamped orchestration event. Safe on a nil writer.
func (w *Writer) Step(format string, args ...any) {
	if w == nil || w.f == nil {
		return
	}
	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	if _, err := w.f.WriteString(line); err != nil {
		slog.Warn("error writing trace log", "error", err)
	}
}

func (w *Writer) Close() {
	if w != nil && w.f != nil {
		w.f.Close()
	}
}
