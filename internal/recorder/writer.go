package recorder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/layerkey/remapd/internal/logging"
)

// Writer drains a Record channel to a file as a single JSON array,
// written incrementally so a session can be tailed while still running.
// Record boundaries are newline-delimited for readability, but the file
// as a whole is only valid JSON once Run returns and the closing "]" has
// been written — a session killed mid-flight leaves a truncated array,
// which is the tradeoff of streaming the format instead of buffering the
// whole session in memory.
type Writer struct {
	f     *os.File
	count int
}

// NewWriter creates (or truncates) path and writes the array's opening
// bracket.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create tap log %s: %w", path, err)
	}
	if _, err := f.WriteString("[\n"); err != nil {
		f.Close()
		return nil, fmt.Errorf("write tap log header: %w", err)
	}
	return &Writer{f: f}, nil
}

// Run drains records until the channel is closed, then closes the file.
// Marshal or write failures for a single record are logged and skipped
// rather than aborting the whole session.
func (w *Writer) Run(records <-chan Record, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Discard()
	}
	for rec := range records {
		if err := w.writeOne(rec); err != nil {
			logger.Warn("tap log write failed, dropping record", "err", err)
		}
	}
	return w.Close()
}

func (w *Writer) writeOne(rec Record) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal tap record: %w", err)
	}
	if w.count > 0 {
		if _, err := w.f.WriteString(",\n"); err != nil {
			return fmt.Errorf("write tap record separator: %w", err)
		}
	}
	if _, err := w.f.Write(b); err != nil {
		return fmt.Errorf("write tap record: %w", err)
	}
	w.count++
	return nil
}

// Close writes the array's closing bracket and closes the underlying
// file. Safe to call once, typically from Run's return path rather than
// directly.
func (w *Writer) Close() error {
	_, writeErr := w.f.WriteString("\n]\n")
	closeErr := w.f.Close()
	if writeErr != nil {
		return fmt.Errorf("write tap log footer: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close tap log: %w", closeErr)
	}
	return nil
}
