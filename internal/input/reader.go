package input

import (
	"context"
	"io"
	"log/slog"
)

// readerSource reads everything from an already open stream, e.g. stdin.
type readerSource struct {
	name   string
	reader io.Reader
}

var _ Source = (*readerSource)(nil)

func NewReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, reader: r}
}

func (rs *readerSource) Name() string {
	return rs.name
}

func (rs *readerSource) Lines(ctx context.Context) ([]string, error) {
	lines, err := readLines(ctx, rs.reader)
	if err != nil {
		return nil, err
	}
	slog.Debug("read input stream done", "name", rs.name, "lines", len(lines))
	return lines, nil
}
