// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidConfig is returned for any evaluator misconfiguration.
	ErrInvalidConfig = errors.New("invalid evaluator configuration")
	// ErrWeightSum is returned when the criteria weights do not add up to MaxScore.
	ErrWeightSum = fmt.Errorf("%w: criteria weights must sum to %d", ErrInvalidConfig, MaxScore)
)

// Evaluator scores passwords against a fixed criteria table. It holds no
// mutable state and is safe for concurrent use.
type Evaluator struct {
	criteria  []Criterion
	estimator CrackTimeEstimator
}

// NewEvaluator builds an evaluator from the defaults plus the given options and
// checks the resulting configuration.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	criteria := cfg.criteria
	if criteria == nil {
		criteria = DefaultCriteria(cfg.dictionary, NewPatternDetector(cfg.fragments), cfg.repeatRun)
	}
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	e := &Evaluator{
		criteria:  make([]Criterion, len(criteria)),
		estimator: NewCrackTimeEstimator(cfg.guessesPerSecond, cfg.symbolSetSize),
	}
	copy(e.criteria, criteria)

	log.Debug().Msgf("evaluator ready with %d criteria and %d pattern fragments", len(e.criteria), len(cfg.fragments))
	return e, nil
}

// MustNewEvaluator is NewEvaluator for configurations that are known to be
// valid. It panics otherwise.
func MustNewEvaluator(opts ...Option) *Evaluator {
	e, err := NewEvaluator(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

func (c config) validate() error {
	if c.criteria == nil && c.dictionary == nil {
		return fmt.Errorf("%w: dictionary is required", ErrInvalidConfig)
	}
	if c.criteria == nil && c.repeatRun < 2 {
		return fmt.Errorf("%w: repeat run must be at least 2, got %d", ErrInvalidConfig, c.repeatRun)
	}
	if c.guessesPerSecond <= 0 || math.IsInf(c.guessesPerSecond, 0) || math.IsNaN(c.guessesPerSecond) {
		return fmt.Errorf("%w: guess rate must be a positive number, got %v", ErrInvalidConfig, c.guessesPerSecond)
	}
	if c.symbolSetSize <= 0 {
		return fmt.Errorf("%w: symbol set size must be positive, got %d", ErrInvalidConfig, c.symbolSetSize)
	}

	return nil
}

func validateCriteria(criteria []Criterion) error {
	if len(criteria) == 0 {
		return fmt.Errorf("%w: no criteria", ErrInvalidConfig)
	}

	seen := make(map[CriterionID]struct{}, len(criteria))
	sum := 0
	for _, c := range criteria {
		if c.ID == "" {
			return fmt.Errorf("%w: criterion without id", ErrInvalidConfig)
		}
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: duplicate criterion %q", ErrInvalidConfig, c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Weight <= 0 {
			return fmt.Errorf("%w: criterion %q has weight %d", ErrInvalidConfig, c.ID, c.Weight)
		}
		if c.Predicate == nil {
			return fmt.Errorf("%w: criterion %q has no predicate", ErrInvalidConfig, c.ID)
		}
		sum += c.Weight
	}

	if sum != MaxScore {
		return fmt.Errorf("%w, got %d", ErrWeightSum, sum)
	}

	return nil
}

// Criteria returns a copy of the criteria table in declaration order.
func (e *Evaluator) Criteria() []Criterion {
	out := make([]Criterion, len(e.criteria))
	copy(out, e.criteria)
	return out
}

// Check runs every criterion against the password, in declaration order.
func (e *Evaluator) Check(password string) []CriterionResult {
	results := make([]CriterionResult, len(e.criteria))
	for i, c := range e.criteria {
		noInput := c.RequiresInput && password == ""
		results[i] = CriterionResult{
			ID:         c.ID,
			Label:      c.Label,
			Weight:     c.Weight,
			Rationale:  c.Rationale,
			Warning:    c.Warning,
			Suggestion: c.Suggestion,
			Passed:     !noInput && c.Predicate(password),
			noInput:    noInput,
		}
	}

	return results
}

// EstimateCrackTime runs only the crack time estimator.
func (e *Evaluator) EstimateCrackTime(password string) CrackTime {
	return e.estimator.Estimate(password)
}

// Evaluate produces the full report for a password. It never fails.
func (e *Evaluator) Evaluate(password string) Report {
	results := e.Check(password)
	score := Score(results)

	return Report{
		Score:     score,
		Level:     LevelFor(score),
		Results:   results,
		CrackTime: e.estimator.Estimate(password),
	}
}

// Score adds up the weights of the passed results, clamped to 0-100.
func Score(results []CriterionResult) int {
	score := 0
	for _, r := range results {
		if r.Passed {
			score += r.Weight
		}
	}

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

var defaultEvaluator = MustNewEvaluator()

// Default returns the process-wide evaluator built from the default options.
func Default() *Evaluator {
	return defaultEvaluator
}

// Evaluate runs the default evaluator.
func Evaluate(password string) Report {
	return defaultEvaluator.Evaluate(password)
}
