// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrackTime_Empty(t *testing.T) {
	c := Evaluate("").CrackTime
	assert.Equal(t, Instantly, c.Display)
	assert.Zero(t, c.Seconds)
	assert.Zero(t, c.AlphabetSize)
	assert.True(t, math.IsInf(c.Log10Seconds, -1))
}

func TestCrackTime_AlphabetSize(t *testing.T) {
	e := NewCrackTimeEstimator(DefaultGuessesPerSecond, DefaultSymbolSetSize)

	cases := []struct {
		password string
		size     int
	}{
		{"abc", 26},
		{"ABC", 26},
		{"123", 10},
		{"!!", 32},
		{"é", 32},
		{"aB", 52},
		{"aB3", 62},
		{"aB3$", 94},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.size, e.Estimate(tc.password).AlphabetSize, "password %q", tc.password)
	}
}

func TestCrackTime_Values(t *testing.T) {
	c := Evaluate("abc").CrackTime
	assert.Equal(t, Instantly, c.Display)
	assert.InDelta(t, 17576.0/2e9, c.Seconds, 1e-12)

	c = Evaluate("password").CrackTime
	assert.Equal(t, "1 minute", c.Display)
	assert.InDelta(t, 104.41, c.Seconds, 0.01)
	assert.InDelta(t, 8*math.Log2(26), c.EntropyBits, 1e-9)

	c = Evaluate("Tr0ub4dor&3").CrackTime
	assert.Equal(t, "802 centuries", c.Display)
}

func TestCrackTime_GuessRate(t *testing.T) {
	e, err := NewEvaluator(WithGuessRate(1))
	assert.NoError(t, err)

	// 10^3 / 1 / 2
	c := e.EstimateCrackTime("123")
	assert.Equal(t, 500.0, c.Seconds)
	assert.Equal(t, "8 minutes", c.Display)
}

func TestCrackTime_StrictlyIncreasingWithLength(t *testing.T) {
	for _, unit := range []string{"a", "aB", "aB3", "aB3$", "é"} {
		prev := Evaluate(unit).CrackTime
		for n := 2; n <= 250; n++ {
			cur := Evaluate(strings.Repeat(unit, n)).CrackTime
			assert.Greater(t, cur.Log10Seconds, prev.Log10Seconds, "unit %q length %d", unit, n)
			if !math.IsInf(cur.Seconds, 1) {
				assert.Greater(t, cur.Seconds, prev.Seconds, "unit %q length %d", unit, n)
			}
			prev = cur
		}
	}
}

func TestCrackTime_ExtremeLength(t *testing.T) {
	c := Evaluate(strings.Repeat("aB3$", 100000)).CrackTime
	assert.True(t, math.IsInf(c.Seconds, 1))
	assert.False(t, math.IsInf(c.Log10Seconds, 0))
	assert.True(t, strings.HasSuffix(c.Display, " centuries"))
	assert.Contains(t, c.Display, "e+")
}

func TestFormatCrackTime(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, Instantly},
		{0.999, Instantly},
		{1, "1 second"},
		{59.9, "59 seconds"},
		{60, "1 minute"},
		{3599, "59 minutes"},
		{3600, "1 hour"},
		{7200, "2 hours"},
		{86400, "1 day"},
		{86400 * 364, "364 days"},
		{secondsPerYear, "1 year"},
		{secondsPerYear * 99, "99 years"},
		{secondsPerCentury, "100 years"},
		{secondsPerYear * 500, "500 years"},
		{secondsPerYear * 999, "999 years"},
		{secondsPerYear * 1000, "10 centuries"},
		{secondsPerCentury * 12345, "12,345 centuries"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCrackTime(tc.seconds, math.Log10(tc.seconds)), "seconds %v", tc.seconds)
	}

	assert.Equal(t, "3.2e+390 centuries", FormatCrackTime(math.Inf(1), 400))
	assert.Equal(t, "1.0e+16 centuries", FormatCrackTime(secondsPerCentury*1e16, math.Log10(secondsPerCentury*1e16)))
}
