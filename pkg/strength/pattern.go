// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"strings"
	"unicode/utf8"
)

// DefaultRepeatRun is the shortest run of one repeated character that counts
// as repetition.
const DefaultRepeatRun = 3

// DefaultFragmentWindow is the length of the slices cut from each sequence.
const DefaultFragmentWindow = 3

// DefaultSequences are the digit runs and keyboard rows (both directions) the
// default fragments are cut from.
var DefaultSequences = []string{
	"0123456789",
	"9876543210",
	"qwerty",
	"ytrewq",
	"asdfgh",
	"hgfdsa",
	"zxcvbn",
	"nbvcxz",
}

// SlidingFragments slices every sequence into all of its substrings of
// exactly window code points. Sequences shorter than the window are kept whole.
// The result is lowercased and free of duplicates, in first-seen order.
func SlidingFragments(sequences []string, window int) []string {
	seen := make(map[string]struct{})
	fragments := make([]string, 0, len(sequences)*4)

	add := func(f string) {
		f = strings.ToLower(f)
		if f == "" {
			return
		}
		if _, ok := seen[f]; ok {
			return
		}
		seen[f] = struct{}{}
		fragments = append(fragments, f)
	}

	for _, seq := range sequences {
		runes := []rune(seq)
		if window <= 0 || len(runes) <= window {
			add(seq)
			continue
		}
		for i := 0; i+window <= len(runes); i++ {
			add(string(runes[i : i+window]))
		}
	}

	return fragments
}

// PatternDetector looks for known sequential fragments inside a password.
type PatternDetector struct {
	fragments []string
}

// NewPatternDetector copies and lowercases the fragments. Empty fragments are
// dropped since they would match everything.
func NewPatternDetector(fragments []string) *PatternDetector {
	d := &PatternDetector{fragments: make([]string, 0, len(fragments))}
	for _, f := range fragments {
		if f == "" {
			continue
		}
		d.fragments = append(d.fragments, strings.ToLower(f))
	}

	return d
}

// Match reports the first fragment found in the password, ignoring case.
func (d *PatternDetector) Match(password string) (string, bool) {
	if password == "" {
		return "", false
	}

	lower := strings.ToLower(password)
	for _, f := range d.fragments {
		if strings.Contains(lower, f) {
			return f, true
		}
	}

	return "", false
}

// Fragments returns a copy of the configured fragments.
func (d *PatternDetector) Fragments() []string {
	out := make([]string, len(d.fragments))
	copy(out, d.fragments)
	return out
}

// HasRepeatedRun reports whether the password holds run or more identical
// consecutive code points. It stops at the first such run. Invalid UTF-8
// bytes are compared as raw bytes, so distinct invalid bytes never repeat.
func HasRepeatedRun(password string, run int) bool {
	if run < 2 || utf8.RuneCountInString(password) < run {
		return false
	}

	prev := ""
	count := 0
	for i := 0; i < len(password); {
		_, size := utf8.DecodeRuneInString(password[i:])
		cur := password[i : i+size]
		if cur == prev {
			count++
		} else {
			count = 1
		}
		if count >= run {
			return true
		}
		prev = cur
		i += size
	}

	return false
}
