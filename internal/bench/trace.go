package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/elektrokombinacija/dwr-research/internal/algo"
)

// TraceRecord tags a search expansion with the run it belongs to, so one
// stream can hold a whole grid.
type TraceRecord struct {
	Run      string `json:"run"`
	Scenario string `json:"scenario"`
	Solver   string `json:"solver"`
	algo.TraceEvent
}

// TraceWriter streams JSON lines through zstd to a file. Safe for
// concurrent writers; Close flushes the final frame.
type TraceWriter struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewTraceWriter creates or truncates the trace file at path.
func NewTraceWriter(path string) (*TraceWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bench trace: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("bench trace: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("bench trace: %w", err)
	}
	return &TraceWriter{
		f:   f,
		enc: enc,
		w:   bufio.NewWriterSize(enc, 128*1024),
	}, nil
}

// Write appends one record as a JSON line.
func (t *TraceWriter) Write(v any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := t.w.Write(b); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

// Close flushes buffered lines and the compression frame.
func (t *TraceWriter) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var first error
	if err := t.w.Flush(); err != nil {
		first = err
	}
	if err := t.enc.Close(); err != nil && first == nil {
		first = err
	}
	if err := t.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
