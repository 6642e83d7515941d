package main

import (
	"os"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
