package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/jsonmessage"
	archive "github.com/moby/go-archive"
	"github.com/moby/patternmatcher/ignorefile"
	"golang.org/x/term"
)

const (
	dockerfileName   = "Dockerfile"
	dockerignoreName = ".dockerignore"
)

// ErrBuildFailed is returned when the engine reports an error while building an image.
var ErrBuildFailed = errors.New("image build failed")

// ImageAPIClient is the subset of the Docker API used for image management.
//
//go:generate mockery
type ImageAPIClient interface {
	ImageBuild(
		ctx context.Context,
		buildContext io.Reader,
		options build.ImageBuildOptions,
	) (build.ImageBuildResponse, error)
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error)
}

// ImageManager builds, finds and removes local images.
type ImageManager struct {
	client ImageAPIClient
	out    io.Writer
}

// NewImageManager creates an ImageManager that streams build progress to out.
func NewImageManager(apiClient ImageAPIClient, out io.Writer) (*ImageManager, error) {
	if apiClient == nil {
		return nil, ErrAPIClientNil
	}

	if out == nil {
		out = io.Discard
	}

	return &ImageManager{client: apiClient, out: out}, nil
}

// Build builds contextDir/Dockerfile and tags the result. Files matched by
// contextDir/.dockerignore are left out of the build context.
func (m *ImageManager) Build(ctx context.Context, contextDir, tag string) error {
	buildContext, err := tarBuildContext(contextDir)
	if err != nil {
		return err
	}

	defer func() { _ = buildContext.Close() }()

	resp, err := m.client.ImageBuild(ctx, buildContext, build.ImageBuildOptions{
		Tags:        []string{tag},
		Dockerfile:  dockerfileName,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build image %s: %w", tag, err)
	}

	defer func() { _ = resp.Body.Close() }()

	fd, isTerminal := terminalFd(m.out)

	err = jsonmessage.DisplayJSONMessagesStream(resp.Body, m.out, fd, isTerminal, nil)
	if err != nil {
		var jsonErr *jsonmessage.JSONError
		if errors.As(err, &jsonErr) {
			return fmt.Errorf("%w: %s: %s", ErrBuildFailed, tag, jsonErr.Message)
		}

		return fmt.Errorf("failed to read build output for %s: %w", tag, err)
	}

	return nil
}

// Exists reports whether an image with the given reference is present locally.
func (m *ImageManager) Exists(ctx context.Context, tag string) (bool, error) {
	images, err := m.client.ImageList(ctx, image.ListOptions{
		Filters: filters.NewArgs(filters.Arg("reference", tag)),
	})
	if err != nil {
		return false, fmt.Errorf("failed to list images: %w", err)
	}

	return len(images) > 0, nil
}

// Remove deletes the image. A missing image is not an error.
func (m *ImageManager) Remove(ctx context.Context, tag string) error {
	_, err := m.client.ImageRemove(ctx, tag, image.RemoveOptions{PruneChildren: true})
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil
		}

		return fmt.Errorf("failed to remove image %s: %w", tag, err)
	}

	return nil
}

func tarBuildContext(contextDir string) (io.ReadCloser, error) {
	info, err := os.Stat(contextDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read build context: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: build context %s is not a directory", ErrBuildFailed, contextDir)
	}

	excludes, err := readDockerignore(contextDir)
	if err != nil {
		return nil, err
	}

	buildContext, err := archive.TarWithOptions(contextDir, &archive.TarOptions{
		ExcludePatterns: excludes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive build context %s: %w", contextDir, err)
	}

	return buildContext, nil
}

func readDockerignore(contextDir string) ([]string, error) {
	file, err := os.Open(filepath.Join(contextDir, dockerignoreName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open %s: %w", dockerignoreName, err)
	}

	defer func() { _ = file.Close() }()

	excludes, err := ignorefile.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", dockerignoreName, err)
	}

	return excludes, nil
}

func terminalFd(out io.Writer) (uintptr, bool) {
	file, ok := out.(*os.File)
	if !ok {
		return 0, false
	}

	fd := file.Fd()

	return fd, term.IsTerminal(int(fd)) //nolint:gosec // fd fits in int
}
