package hosts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

const defaultFileMode os.FileMode = 0o644

// FileWriter replaces the content of a file.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// ElevateFunc writes data to path with elevated privileges.
type ElevateFunc func(ctx context.Context, path string, data []byte) error

// AferoWriter writes through an afero filesystem, keeping the file's existing mode.
type AferoWriter struct {
	fs afero.Fs
}

// NewAferoWriter returns a writer for fs.
func NewAferoWriter(fs afero.Fs) *AferoWriter {
	return &AferoWriter{fs: fs}
}

// WriteFile truncates and rewrites path.
func (w *AferoWriter) WriteFile(_ context.Context, path string, data []byte) error {
	mode := defaultFileMode
	if info, err := w.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	err := afero.WriteFile(w.fs, path, data, mode)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// ElevatingWriter retries a denied write with elevated privileges.
type ElevatingWriter struct {
	primary FileWriter
	elevate ElevateFunc
}

// NewElevatingWriter returns a writer that falls back to elevate when primary is denied.
// A nil elevate disables the fallback.
func NewElevatingWriter(primary FileWriter, elevate ElevateFunc) *ElevatingWriter {
	return &ElevatingWriter{primary: primary, elevate: elevate}
}

// WriteFile writes with the primary writer and retries on os.ErrPermission.
func (w *ElevatingWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	err := w.primary.WriteFile(ctx, path, data)
	if err == nil || w.elevate == nil || !errors.Is(err, os.ErrPermission) {
		return err
	}

	elevateErr := w.elevate(ctx, path, data)
	if elevateErr != nil {
		return fmt.Errorf("%w; elevated write failed: %w", err, elevateErr)
	}

	return nil
}

// SudoTee writes data to path through `sudo tee`, which may prompt for a password.
// It returns an error immediately when sudo is not installed.
func SudoTee(ctx context.Context, path string, data []byte) error {
	sudo, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("sudo is not available: %w", err)
	}

	cmd := exec.CommandContext(ctx, sudo, "tee", path)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("sudo tee %s: %w", path, err)
	}

	return nil
}
