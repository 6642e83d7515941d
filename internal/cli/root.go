// Package cli wires the scratchcards commands together.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/config"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/report"
	"github.com/spf13/cobra"
)

var Version = "0.1.0"

type configKey struct{}

func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "scratchcards",
		Short: "Score scratchcards and count the copies they win",
		Long: `scratchcards reads lines like "Card 1: 41 48 83 | 83 86 6" and reports
the total points of all cards and the number of cards held once every
winning card has handed out its copies.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.FileUsed != "" {
				slog.Debug("using config file", "path", cfg.FileUsed)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (text|table|json)")
	rootCmd.PersistentFlags().Bool("breakdown", false, "print a row per card")
	rootCmd.PersistentFlags().Bool("example", false, "use the sample cards from the puzzle statement")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newSolveCmd("solve", "Print both the total score and the total number of cards", report.PartBoth))
	rootCmd.AddCommand(newSolveCmd("score", "Print the total score of the cards", report.PartScore))
	rootCmd.AddCommand(newSolveCmd("cascade", "Print the number of cards after copies are handed out", report.PartCascade))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("scratchcards failed", "err", err)
		return 1
	}
	return 0
}

func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{Output: config.DefaultOutput}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "scratchcards v%s\n", Version)
		},
	}
}
