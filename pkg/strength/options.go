// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

type config struct {
	dictionary       Dictionary
	fragments        []string
	repeatRun        int
	guessesPerSecond float64
	symbolSetSize    int
	criteria         []Criterion
}

func defaultConfig() config {
	return config{
		dictionary:       DefaultDictionary,
		fragments:        SlidingFragments(DefaultSequences, DefaultFragmentWindow),
		repeatRun:        DefaultRepeatRun,
		guessesPerSecond: DefaultGuessesPerSecond,
		symbolSetSize:    DefaultSymbolSetSize,
	}
}

// Option customizes an Evaluator.
type Option func(*config)

// WithDictionary replaces the common-password dictionary.
func WithDictionary(d Dictionary) Option {
	return func(c *config) {
		c.dictionary = d
	}
}

// WithFragments replaces the sequential pattern fragments.
func WithFragments(fragments []string) Option {
	return func(c *config) {
		c.fragments = fragments
	}
}

// WithRepeatRun sets how many identical consecutive characters count as
// repetition.
func WithRepeatRun(n int) Option {
	return func(c *config) {
		c.repeatRun = n
	}
}

// WithGuessRate sets the attacker guesses per second used for crack times.
func WithGuessRate(guessesPerSecond float64) Option {
	return func(c *config) {
		c.guessesPerSecond = guessesPerSecond
	}
}

// WithSymbolSetSize sets the alphabet contribution of special characters.
func WithSymbolSetSize(n int) Option {
	return func(c *config) {
		c.symbolSetSize = n
	}
}

// WithCriteria replaces the whole criteria table. Dictionary, fragment and
// repeat run options have no effect on a replaced table.
func WithCriteria(criteria []Criterion) Option {
	return func(c *config) {
		c.criteria = criteria
	}
}
