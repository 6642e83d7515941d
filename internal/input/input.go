package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

type Source interface {
	Lines(context.Context) ([]string, error)
	Name() string
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot scan lines: %w", err)
	}
	return lines, nil
}
