package hosts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// ErrUnsupportedPlatform is returned when the hosts file cannot be edited on this OS.
var ErrUnsupportedPlatform = errors.New("unsupported OS")

// Result describes what an edit did.
type Result int

const (
	// Added means the entry was appended.
	Added Result = iota
	// AlreadyPresent means the hostname was already mapped and nothing changed.
	AlreadyPresent
	// Removed means at least one line naming the hostname was dropped.
	Removed
	// NotPresent means no line named the hostname and nothing changed.
	NotPresent
	// Replaced means lines mapping the hostname to another address were rewritten
	// and the entry was appended.
	Replaced
)

// Entry is a single hosts file mapping.
type Entry struct {
	Address  string
	Hostname string
}

func (e Entry) String() string {
	return e.Address + " " + e.Hostname
}

// Editor adds and removes one Entry in a hosts file.
type Editor struct {
	fs       afero.Fs
	writer   FileWriter
	platform Platform
	goos     string
	path     string
	entry    Entry
}

// Option customizes an Editor.
type Option func(*Editor)

// WithFs reads the hosts file from fs.
func WithFs(fs afero.Fs) Option {
	return func(e *Editor) { e.fs = fs }
}

// WithWriter writes the hosts file with writer.
func WithWriter(writer FileWriter) Option {
	return func(e *Editor) { e.writer = writer }
}

// WithPlatform overrides the detected platform. goos is only used in messages.
func WithPlatform(platform Platform, goos string) Option {
	return func(e *Editor) {
		e.platform = platform
		e.goos = goos
	}
}

// NewEditor returns an editor for entry in the hosts file at path. By default it
// uses the OS filesystem and falls back to `sudo tee` when writing is denied.
func NewEditor(path string, entry Entry, opts ...Option) *Editor {
	editor := &Editor{
		fs:       afero.NewOsFs(),
		platform: DetectPlatform(),
		goos:     runtime.GOOS,
		path:     path,
		entry:    entry,
	}

	for _, opt := range opts {
		opt(editor)
	}

	if editor.writer == nil {
		editor.writer = NewElevatingWriter(NewAferoWriter(editor.fs), SudoTee)
	}

	return editor
}

// Add appends the entry unless a line already maps the hostname to the entry's address.
// The hostname is taken off lines that map it elsewhere so the entry takes effect.
func (e *Editor) Add(ctx context.Context) (Result, error) {
	if !e.platform.Supported() {
		return NotPresent, fmt.Errorf(
			"%w (%s). Please add %s to your hosts file manually",
			ErrUnsupportedPlatform, e.goos, e.entry,
		)
	}

	content, err := e.read()
	if err != nil {
		return NotPresent, err
	}

	lines := strings.SplitAfter(string(content), "\n")
	if slices.ContainsFunc(lines, e.mapsEntry) {
		return AlreadyPresent, nil
	}

	result := Added

	var buf bytes.Buffer

	for _, line := range lines {
		if !e.mapsHostname(line) {
			buf.WriteString(line)

			continue
		}

		result = Replaced

		buf.WriteString(e.withoutHostname(line))
	}

	if buf.Len() > 0 && !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}

	buf.WriteString(e.entry.String() + "\n")

	err = e.writer.WriteFile(ctx, e.path, buf.Bytes())
	if err != nil {
		return NotPresent, fmt.Errorf("failed to add hosts entry: %w", err)
	}

	return result, nil
}

// Remove drops every line that has the hostname as one of its fields.
func (e *Editor) Remove(ctx context.Context) (Result, error) {
	if !e.platform.Supported() {
		return NotPresent, fmt.Errorf(
			"%w (%s). Please remove the entry for %s manually",
			ErrUnsupportedPlatform, e.goos, e.entry.Hostname,
		)
	}

	content, err := e.read()
	if err != nil {
		return NotPresent, err
	}

	lines := strings.SplitAfter(string(content), "\n")
	kept := slices.DeleteFunc(slices.Clone(lines), e.namesHostname)

	if len(kept) == len(lines) {
		return NotPresent, nil
	}

	err = e.writer.WriteFile(ctx, e.path, []byte(strings.Join(kept, "")))
	if err != nil {
		return NotPresent, fmt.Errorf("failed to remove hosts entry: %w", err)
	}

	return Removed, nil
}

func (e *Editor) read() ([]byte, error) {
	content, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read %s: %w", e.path, err)
	}

	return content, nil
}

// mapsHostname reports whether an active (uncommented) line maps the hostname.
func (e *Editor) mapsHostname(line string) bool {
	fields := activeFields(line)

	return len(fields) >= 2 && slices.Contains(fields[1:], e.entry.Hostname)
}

func (e *Editor) mapsEntry(line string) bool {
	return e.mapsHostname(line) && activeFields(line)[0] == e.entry.Address
}

// withoutHostname rewrites a mapping line without the hostname, keeping its
// other names and trailing comment. A line left with no names is dropped.
func (e *Editor) withoutHostname(line string) string {
	fields := activeFields(line)
	names := slices.DeleteFunc(slices.Clone(fields[1:]), func(name string) bool {
		return name == e.entry.Hostname
	})

	if len(names) == 0 {
		return ""
	}

	rewritten := strings.Join(append([]string{fields[0]}, names...), " ")

	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		rewritten += " " + strings.TrimRight(line[idx:], "\r\n")
	}

	return rewritten + "\n"
}

func activeFields(line string) []string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	return strings.Fields(line)
}

func (e *Editor) namesHostname(line string) bool {
	return slices.Contains(strings.Fields(line), e.entry.Hostname)
}
