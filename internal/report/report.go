package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/card"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/ledger"
	"github.com/jedib0t/go-pretty/v6/table"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Part selects which of the two answers end up in a report.
type Part int

const (
	PartBoth Part = iota
	PartScore
	PartCascade
)

type Row struct {
	Position   int    `json:"position"`
	Label      string `json:"label"`
	MatchCount int    `json:"matches"`
	Score      int    `json:"score"`
	Instances  int    `json:"instances"`
}

type Report struct {
	TotalScore     *int  `json:"total_score,omitempty"`
	TotalInstances *int  `json:"total_instances,omitempty"`
	Cards          []Row `json:"cards,omitempty"`
}

// FromLedger expects a cascaded ledger whenever the cascade part is requested.
func FromLedger(l *ledger.Ledger, part Part, breakdown bool) Report {
	var r Report
	if part != PartCascade {
		score := l.TotalScore()
		r.TotalScore = &score
	}
	if part != PartScore {
		instances := l.TotalInstances()
		r.TotalInstances = &instances
	}
	if breakdown {
		r.Cards = make([]Row, 0, l.Len())
		for pos := 1; pos <= l.Len(); pos++ {
			e := l.Entry(pos)
			r.Cards = append(r.Cards, Row{
				Position:   pos,
				Label:      e.Card.Label,
				MatchCount: e.MatchCount,
				Score:      card.Score(e.MatchCount),
				Instances:  e.Instances,
			})
		}
	}
	return r
}

func Render(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText:
		return renderText(w, r)
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func renderText(w io.Writer, r Report) error {
	for _, row := range r.Cards {
		_, err := fmt.Fprintf(w, "%s: matches=%d score=%d instances=%d\n",
			row.Label, row.MatchCount, row.Score, row.Instances)
		if err != nil {
			return err
		}
	}
	if r.TotalScore != nil {
		if _, err := fmt.Fprintln(w, "SUM:", *r.TotalScore); err != nil {
			return err
		}
	}
	if r.TotalInstances != nil {
		if _, err := fmt.Fprintln(w, "TOTAL:", *r.TotalInstances); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, r Report) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Card", "Matches", "Score", "Instances"})
	for _, row := range r.Cards {
		t.AppendRow(table.Row{row.Position, row.Label, row.MatchCount, row.Score, row.Instances})
	}
	footer := table.Row{"", "Total", "", "", ""}
	if r.TotalScore != nil {
		footer[3] = *r.TotalScore
	}
	if r.TotalInstances != nil {
		footer[4] = *r.TotalInstances
	}
	t.AppendFooter(footer)
	t.Render()
	return nil
}
