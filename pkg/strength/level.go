// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// Level is the qualitative band a score falls into.
type Level int

const (
	VeryWeak Level = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

// levelBands is ordered from the highest lower bound down. A score belongs to
// the first band whose lower bound it reaches.
var levelBands = []struct {
	min   int
	level Level
}{
	{80, VeryStrong},
	{60, Strong},
	{40, Moderate},
	{20, Weak},
	{0, VeryWeak},
}

// LevelFor maps a score to its band. Scores outside 0-100 are clamped first.
func LevelFor(score int) Level {
	score = clampScore(score)
	for _, b := range levelBands {
		if score >= b.min {
			return b.level
		}
	}

	return VeryWeak
}

func (l Level) String() string {
	switch l {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// Key is the stable identifier used in JSON output.
func (l Level) Key() string {
	switch l {
	case VeryWeak:
		return "very_weak"
	case Weak:
		return "weak"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very_strong"
	default:
		return "unknown"
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.Key()), nil
}
