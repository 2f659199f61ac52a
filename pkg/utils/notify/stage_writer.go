package notify

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"
)

// StageSeparatingWriter inserts a blank line before every stage title that follows
// earlier output. A title is a write whose first visible rune is a pictographic
// emoji, e.g. "🚀 Installing 2048...".
//
//	writer := notify.NewStageSeparatingWriter(cmd.OutOrStdout())
//	cmd.SetOut(writer)
type StageSeparatingWriter struct {
	underlying io.Writer
	hasWritten bool
	mu         sync.Mutex
}

// NewStageSeparatingWriter wraps underlying.
func NewStageSeparatingWriter(underlying io.Writer) *StageSeparatingWriter {
	return &StageSeparatingWriter{underlying: underlying}
}

// Write implements io.Writer.
func (w *StageSeparatingWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	if w.hasWritten && startsWithEmoji(skipANSI(data)) {
		_, err := w.underlying.Write([]byte{'\n'})
		if err != nil {
			return 0, fmt.Errorf("failed to write stage separator: %w", err)
		}
	}

	n, err := w.underlying.Write(data)
	if n > 0 {
		w.hasWritten = true
	}

	if err != nil {
		return n, fmt.Errorf("failed to write data: %w", err)
	}

	return n, nil
}

// skipANSI drops leading CSI escape sequences such as the color prefix fatih/color emits.
func skipANSI(data []byte) []byte {
	for len(data) >= 2 && data[0] == 0x1b && data[1] == '[' {
		end := 2
		for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
			end++
		}

		if end >= len(data) {
			return nil
		}

		data = data[end+1:]
	}

	return data
}

// startsWithEmoji reports whether data begins with a title emoji. The message
// symbols (► ✔ ✗ ⚠ ℹ ⏲) are in the same Unicode category and are excluded.
func startsWithEmoji(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	first, _ := utf8.DecodeRune(data)
	if first == utf8.RuneError {
		return false
	}

	switch first {
	case '►', '✔', '✗', '⚠', 'ℹ', '⏲':
		return false
	}

	return unicode.Is(unicode.So, first)
}
