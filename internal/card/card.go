package card

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrMalformedLine = errors.New("malformed card line")

type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse card %q: %s", e.Line, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedLine
}

type Numbers map[string]struct{}

func (n Numbers) Contains(num string) bool {
	_, found := n[num]
	return found
}

type Card struct {
	Label   string
	Winning Numbers
	Played  Numbers
}

// Parse reads a single "Card <id>: <winning...> | <played...>" line.
// Numbers are kept as text, only membership matters.
func Parse(line string) (Card, error) {
	if strings.Count(line, ":") != 1 {
		return Card{}, &ParseError{Line: line, Reason: "expected exactly one ':'"}
	}
	label, rest, _ := strings.Cut(line, ":")

	if strings.Count(rest, "|") != 1 {
		return Card{}, &ParseError{Line: line, Reason: "expected exactly one '|'"}
	}
	winning, played, _ := strings.Cut(rest, "|")

	winningSet := tokenize(winning)
	if len(winningSet) == 0 {
		return Card{}, &ParseError{Line: line, Reason: "no winning numbers"}
	}
	playedSet := tokenize(played)
	if len(playedSet) == 0 {
		return Card{}, &ParseError{Line: line, Reason: "no played numbers"}
	}

	return Card{
		Label:   strings.TrimSpace(label),
		Winning: winningSet,
		Played:  playedSet,
	}, nil
}

// ParseAll parses lines in order and stops at the first bad one.
// Blank lines are skipped so a trailing newline in the input is harmless.
func ParseAll(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func tokenize(segment string) Numbers {
	set := make(Numbers)
	for _, tok := range strings.Fields(segment) {
		if !strings.ContainsFunc(tok, unicode.IsDigit) {
			continue
		}
		set[tok] = struct{}{}
	}
	return set
}

// MatchCount is the size of the intersection of the winning and played sets.
func (c Card) MatchCount() int {
	small, big := c.Winning, c.Played
	if len(small) > len(big) {
		small, big = big, small
	}
	matches := 0
	for n := range small {
		if big.Contains(n) {
			matches++
		}
	}
	return matches
}
