package types

import "fmt"

// Difficulty is the ordered skill level of a formula.
type Difficulty string

// Difficulty levels in ascending order.
const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyLevels lists every level in ascending order.
var DifficultyLevels = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     1,
	DifficultyIntermediate: 2,
	DifficultyAdvanced:     3,
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// Rank returns 1 for beginner through 3 for advanced, and 0 for unknown values.
func (d Difficulty) Rank() int {
	return difficultyRank[d]
}

// AtMost reports whether d is at or below limit. An empty limit admits everything.
func (d Difficulty) AtMost(limit Difficulty) bool {
	if limit == "" {
		return true
	}
	return d.Rank() <= limit.Rank()
}

// ParseDifficulty converts a user supplied string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}
