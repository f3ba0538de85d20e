// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "unicode/utf8"

// CriterionID is the stable key of a criterion.
type CriterionID string

const (
	Length8     CriterionID = "length_8"
	Length12    CriterionID = "length_12"
	Lowercase   CriterionID = "lowercase"
	Uppercase   CriterionID = "uppercase"
	Numbers     CriterionID = "numbers"
	Special     CriterionID = "special"
	NotCommon   CriterionID = "not_common"
	NoRepeats   CriterionID = "no_repeats"
	NoSequences CriterionID = "no_sequences"
)

// MaxScore is what the weights of a criteria table must add up to.
const MaxScore = 100

// Predicate must be total: it is called with every possible string.
type Predicate func(password string) bool

// Criterion is one weighted check. Warning and Suggestion are only shown when
// the check fails, and may be empty.
type Criterion struct {
	ID         CriterionID
	Label      string
	Weight     int
	Rationale  string
	Warning    string
	Suggestion string
	Predicate  Predicate

	// RequiresInput fails the criterion for the empty password without
	// giving advice. Set it on checks for the absence of something, which
	// the empty password would otherwise pass vacuously.
	RequiresInput bool
}

// DefaultCriteria builds the standard nine criteria around the given
// dictionary, pattern detector and repeat run length.
func DefaultCriteria(dict Dictionary, patterns *PatternDetector, repeatRun int) []Criterion {
	return []Criterion{
		{
			ID:         Length8,
			Label:      "Minimum 8 characters",
			Weight:     10,
			Rationale:  "Longer passwords are harder to crack",
			Warning:    "Password is too short",
			Suggestion: "Use at least 8 characters",
			Predicate:  minLength(8),
		},
		{
			ID:        Length12,
			Label:     "12+ characters (recommended)",
			Weight:    15,
			Rationale: "Significantly increases security",
			Predicate: minLength(12),
		},
		{
			ID:         Lowercase,
			Label:      "Lowercase letters",
			Weight:     10,
			Rationale:  "Include a-z characters",
			Suggestion: "Add lowercase letters",
			Predicate:  func(p string) bool { return classify(p).lower },
		},
		{
			ID:         Uppercase,
			Label:      "Uppercase letters",
			Weight:     10,
			Rationale:  "Include A-Z characters",
			Suggestion: "Add uppercase letters",
			Predicate:  func(p string) bool { return classify(p).upper },
		},
		{
			ID:         Numbers,
			Label:      "Numbers",
			Weight:     10,
			Rationale:  "Include 0-9 digits",
			Suggestion: "Add numbers",
			Predicate:  func(p string) bool { return classify(p).digit },
		},
		{
			ID:         Special,
			Label:      "Special characters",
			Weight:     15,
			Rationale:  "Include symbols like !@#$%",
			Suggestion: "Add special characters",
			Predicate:  func(p string) bool { return classify(p).special },
		},
		{
			ID:            NotCommon,
			Label:         "Not a common password",
			Weight:        15,
			Rationale:     "Avoid easily guessable passwords",
			Warning:       "This is a commonly used password",
			Suggestion:    "Choose a unique password",
			Predicate:     func(p string) bool { return !dict.Contains(p) },
			RequiresInput: true,
		},
		{
			ID:            NoRepeats,
			Label:         "No repeated characters",
			Weight:        10,
			Rationale:     "Avoid patterns like 'aaa' or '111'",
			Warning:       "Contains repeated characters",
			Suggestion:    "Avoid character repetition",
			Predicate:     func(p string) bool { return !HasRepeatedRun(p, repeatRun) },
			RequiresInput: true,
		},
		{
			ID:            NoSequences,
			Label:         "No sequential patterns",
			Weight:        5,
			Rationale:     "Avoid keyboard patterns",
			Warning:       "Contains keyboard patterns",
			Suggestion:    "Avoid sequential patterns",
			Predicate:     noPattern(patterns),
			RequiresInput: true,
		},
	}
}

func minLength(n int) Predicate {
	return func(p string) bool {
		return utf8.RuneCountInString(p) >= n
	}
}

func noPattern(patterns *PatternDetector) Predicate {
	return func(p string) bool {
		_, found := patterns.Match(p)
		return !found
	}
}
