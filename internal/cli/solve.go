package cli

import (
	"fmt"
	"log/slog"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/card"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/input"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/ledger"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/report"
	"github.com/spf13/cobra"
)

func newSolveCmd(use, short string, part report.Part) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [FILE]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd.Context())
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			format, err := report.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}

			src := chooseSource(cmd, cfg)
			lines, err := src.Lines(cmd.Context())
			if err != nil {
				return fmt.Errorf("cannot read %s: %w", src.Name(), err)
			}
			cards, err := card.ParseAll(lines)
			if err != nil {
				return fmt.Errorf("cannot parse %s: %w", src.Name(), err)
			}
			l, err := ledger.New(cards)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}
			slog.Debug("cards parsed", "source", src.Name(), "cards", l.Len())

			if part != report.PartScore {
				l.Cascade()
			}
			return report.Render(cmd.OutOrStdout(), format, report.FromLedger(l, part, cfg.Breakdown))
		},
	}
}

func chooseSource(cmd *cobra.Command, cfg *config.Config) input.Source {
	switch {
	case cfg.Example:
		return input.NewExampleSource()
	case cfg.Input == "" || cfg.Input == "-":
		return input.NewReaderSource("stdin", cmd.InOrStdin())
	default:
		return input.NewFileSource(cfg.Input)
	}
}
