package ledger

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/scratchcards/internal/card"
)

var ErrEmptyLedger = errors.New("ledger needs at least one card")

type Entry struct {
	Card       card.Card
	MatchCount int
	Instances  int
}

// Ledger holds cards by position. Positions are 1-based and dense, stored
// at index pos-1 of entries.
type Ledger struct {
	entries  []Entry
	cascaded  bool
}

func New(cards []card.Card) (*Ledger, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyLedger
	}
	entries := make([]Entry, len(cards))
	for i, c := range cards {
		entries[i] = Entry{
			Card:       c,
			MatchCount: c.MatchCount(),
			Instances:  1,
		}
	}
	return &Ledger{entries: entries}, nil
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entry returns the entry at 1-based position pos. Positions outside 1..Len
// are a programming error.
func (l *Ledger) Entry(pos int) Entry {
	if pos < 1 || pos > len(l.entries) {
		panic(fmt.Sprintf("ledger position %d out of range 1..%d", pos, len(l.entries)))
	}
	return l.entries[pos-1]
}

// Cascade propagates copies forward: every instance of card p wins one copy
// of each of the next MatchCount cards, clipped at the last card.
// Positions must be visited in increasing order since p's instance count is
// final only once all earlier positions have propagated.
// Only the first call does any work.
func (l *Ledger) Cascade() {
	if l.cascaded {
		return
	}
	n := len(l.entries)
	for p := 0; p < n; p++ {
		k := l.entries[p].Instances
		last := min(p+l.entries[p].MatchCount, n-1)
		for q := p + 1; q <= last; q++ {
			l.entries[q].Instances += k
		}
	}
	l.cascaded = true
	slog.Debug("cascade done", "cards", n, "instances", l.TotalInstances())
}

func (l *Ledger) Instances() []int {
	result := make([]int, len(l.entries))
	for i, e := range l.entries {
		result[i] = e.Instances
	}
	return result
}

func (l *Ledger) TotalInstances() int {
	sum := 0
	for _, e := range l.entries {
		sum += e.Instances
	}
	return sum
}

func (l *Ledger) TotalScore() int {
	sum := 0
	for _, e := range l.entries {
		sum += card.Score(e.MatchCount)
	}
	return sum
}
