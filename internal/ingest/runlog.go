package ingest

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// RunLogEntry is one JSON line in the indexing run log.
type RunLogEntry struct {
	Timestamp      time.Time     `json:"timestamp"`
	RunID          string        `json:"run_id"`
	Path           string        `json:"path"`
	Force          bool          `json:"force"`
	FilesAttempted int           `json:"files_attempted"`
	FilesSucceeded int           `json:"files_succeeded"`
	FilesFailed    int           `json:"files_failed"`
	TotalChunks    int           `json:"total_chunks"`
	Failures       []string      `json:"failures,omitempty"`
	Duration       time.Duration `json:"duration_ns"`
	LatencyMs      int64         `json:"latency_ms"`
}

type RunLogger struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewRunLogger(w io.Writer) *RunLogger {
	return &RunLogger{writer: w}
}

func NewFileRunLogger(path string) (*RunLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	cleanPath := filepath.Clean(path)
	f, err := os.OpenFile(cleanPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 -- path is from application config, not user input
	if err != nil {
		return nil, err
	}
	return NewRunLogger(f), nil
}

func (l *RunLogger) Log(entry RunLogEntry) {
	entry.Timestamp = time.Now()
	entry.LatencyMs = entry.Duration.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := json.NewEncoder(l.writer).Encode(entry); err != nil {
		slog.Error("failed to write run log entry", "error", err)
	}
}
