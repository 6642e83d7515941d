package card

// Score is 0 for no matches and 2^(matches-1) otherwise.
func Score(matches int) int {
	if matches <= 0 {
		return 0
	}
	return 1 << (matches - 1)
}

func TotalScore(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += Score(c.MatchCount())
	}
	return sum
}
