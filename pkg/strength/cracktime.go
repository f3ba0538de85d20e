// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// DefaultGuessesPerSecond is the assumed offline attack rate.
	DefaultGuessesPerSecond = 1e9
	// DefaultSymbolSetSize is the assumed number of distinct special characters.
	DefaultSymbolSetSize = 32

	// Instantly is shown for anything that falls in under a second.
	Instantly = "Instantly"

	secondsPerYear    = 365 * 24 * 60 * 60
	secondsPerCentury = 100 * secondsPerYear

	// Past this many centuries the count is shown in scientific notation.
	maxGroupedCenturies = 1e15
)

// durationUnits are tried smallest first. A unit is used when the value in it
// stays below limit, which is the size of the next unit. Years run up to a
// thousand before switching to centuries.
var durationUnits = []struct {
	singular string
	plural   string
	seconds  float64
	limit    float64
}{
	{"second", "seconds", 1, 60},
	{"minute", "minutes", 60, 60},
	{"hour", "hours", 60 * 60, 24},
	{"day", "days", 24 * 60 * 60, 365},
	{"year", "years", secondsPerYear, 1000},
}

// CrackTime is the average-case brute-force estimate for one password.
//
// Seconds is +Inf once the keyspace leaves float64 range; Log10Seconds stays
// finite for every non-empty password and is -Inf for the empty one.
type CrackTime struct {
	Seconds      float64
	Log10Seconds float64
	AlphabetSize int
	EntropyBits  float64
	Display      string
}

type crackTimeJSON struct {
	Display      string   `json:"display"`
	Seconds      *float64 `json:"seconds"`
	Log10Seconds *float64 `json:"log10_seconds"`
	AlphabetSize int      `json:"alphabet_size"`
	EntropyBits  float64  `json:"entropy_bits"`
}

// MarshalJSON writes non-finite values as null, since JSON has no infinity.
func (c CrackTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(crackTimeJSON{
		Display:      c.Display,
		Seconds:      finite(c.Seconds),
		Log10Seconds: finite(c.Log10Seconds),
		AlphabetSize: c.AlphabetSize,
		EntropyBits:  c.EntropyBits,
	})
}

func finite(f float64) *float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// CrackTimeEstimator derives crack times from the character classes present
// and the password length.
type CrackTimeEstimator struct {
	guessesPerSecond float64
	symbolSetSize    int
}

func NewCrackTimeEstimator(guessesPerSecond float64, symbolSetSize int) CrackTimeEstimator {
	return CrackTimeEstimator{guessesPerSecond: guessesPerSecond, symbolSetSize: symbolSetSize}
}

// Estimate computes alphabet^length / rate / 2. Length is in code points.
func (e CrackTimeEstimator) Estimate(password string) CrackTime {
	alphabet := classify(password).alphabetSize(e.symbolSetSize)
	if alphabet == 0 {
		return CrackTime{Log10Seconds: math.Inf(-1), Display: Instantly}
	}

	a := float64(alphabet)
	n := float64(utf8.RuneCountInString(password))
	seconds := math.Pow(a, n) / e.guessesPerSecond / 2
	log10Seconds := n*math.Log10(a) - math.Log10(2*e.guessesPerSecond)

	return CrackTime{
		Seconds:      seconds,
		Log10Seconds: log10Seconds,
		AlphabetSize: alphabet,
		EntropyBits:  n * math.Log2(a),
		Display:      FormatCrackTime(seconds, log10Seconds),
	}
}

// FormatCrackTime renders a duration in the largest unit that still reads as at
// least one. log10Seconds is only consulted once seconds has overflowed.
func FormatCrackTime(seconds, log10Seconds float64) string {
	if seconds < 1 {
		return Instantly
	}

	for _, u := range durationUnits {
		v := seconds / u.seconds
		if v < u.limit {
			n := int64(math.Floor(v))
			if n == 1 {
				return fmt.Sprintf("%d %s", n, u.singular)
			}
			return fmt.Sprintf("%d %s", n, u.plural)
		}
	}

	return formatCenturies(seconds, log10Seconds)
}

func formatCenturies(seconds, log10Seconds float64) string {
	if !math.IsInf(seconds, 1) {
		if c := seconds / secondsPerCentury; c < maxGroupedCenturies {
			n := int64(math.Floor(c))
			if n == 1 {
				return "1 century"
			}
			p := message.NewPrinter(language.English)
			return p.Sprintf("%d centuries", n)
		}
	}

	l := log10Seconds - math.Log10(secondsPerCentury)
	exp := math.Floor(l)
	mantissa := math.Pow(10, l-exp)
	// keep %.1f from printing 10.0
	if mantissa >= 9.95 {
		mantissa = 1
		exp++
	}

	return fmt.Sprintf("%.1fe+%d centuries", mantissa, int64(exp))
}
