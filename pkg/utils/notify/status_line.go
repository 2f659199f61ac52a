package notify

import (
	"fmt"
	"io"
	"os"
)

// StatusLine rewrites a single terminal line in place with carriage returns.
// It renders the live "ready count" while pods are polled.
type StatusLine struct {
	writer  io.Writer
	width   int
	printed bool
}

// NewStatusLine creates a StatusLine writing to writer (os.Stdout when nil).
func NewStatusLine(writer io.Writer) *StatusLine {
	if writer == nil {
		writer = os.Stdout
	}

	return &StatusLine{writer: writer}
}

// Update replaces the current line content.
func (s *StatusLine) Update(format string, args ...any) {
	line := "► " + fmt.Sprintf(format, args...)

	padding := s.width - len([]rune(line))
	if padding < 0 {
		padding = 0
	}

	_, err := fmt.Fprintf(s.writer, "\r%s%*s", line, padding, "")
	reportWriteError(err)

	s.width = len([]rune(line))
	s.printed = true
}

// Done terminates the status line so following messages start on a fresh line.
func (s *StatusLine) Done() {
	if !s.printed {
		return
	}

	_, err := io.WriteString(s.writer, "\n")
	reportWriteError(err)

	s.printed = false
	s.width = 0
}
