package input

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type fileSource struct {
	path string
}

var _ Source = (*fileSource)(nil)

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (fs *fileSource) Name() string {
	return fs.path
}

func (fs *fileSource) Lines(ctx context.Context) ([]string, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input at %s, err: %w", fs.path, err)
	}
	defer f.Close()

	lines, err := readLines(ctx, f)
	if err != nil {
		return nil, err
	}
	slog.Debug("read input file done", "path", fs.path, "lines", len(lines))
	return lines, nil
}
