package input

import (
	"context"
	_ "embed"
	"strings"
)

//go:embed example.txt
var exampleInput string

type exampleSource struct{}

var _ Source = exampleSource{}

// NewExampleSource serves the six sample cards from the puzzle statement.
func NewExampleSource() Source {
	return exampleSource{}
}

func (exampleSource) Name() string {
	return "example"
}

func (exampleSource) Lines(ctx context.Context) ([]string, error) {
	return readLines(ctx, strings.NewReader(exampleInput))
}
