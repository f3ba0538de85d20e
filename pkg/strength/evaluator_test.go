// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedIDs(r Report) []CriterionID {
	var ids []CriterionID
	for _, res := range r.Results {
		if !res.Passed {
			ids = append(ids, res.ID)
		}
	}
	return ids
}

func TestEvaluate_KnownPasswords(t *testing.T) {
	cases := []struct {
		password string
		score    int
		level    Level
		failed   []CriterionID
	}{
		{"", 0, VeryWeak, []CriterionID{Length8, Length12, Lowercase, Uppercase, Numbers, Special, NotCommon, NoRepeats, NoSequences}},
		{"password", 35, Weak, []CriterionID{Length12, Uppercase, Numbers, Special, NotCommon}},
		{"Tr0ub4dor&3xyz", 100, VeryStrong, nil},
		{"aaaaaaaa", 25, Weak, []CriterionID{Length12, Uppercase, Numbers, Special, NotCommon, NoRepeats}},
		{"123456", 20, Weak, []CriterionID{Length8, Length12, Lowercase, Uppercase, Special, NotCommon, NoSequences}},
		{"Password1", 70, Strong, []CriterionID{Length12, Special}},
		{"correct-horse-battery-staple-2024!", 90, VeryStrong, []CriterionID{Uppercase}},
	}

	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			r := Evaluate(tc.password)
			assert.Equal(t, tc.score, r.Score)
			assert.Equal(t, tc.level, r.Level)
			assert.Equal(t, tc.failed, failedIDs(r))
		})
	}
}

func TestEvaluate_ShapeForArbitraryInput(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"é",
		"日本語のパスワード",
		"\x00\xff\xfe",
		"🔐🔐🔐",
		strings.Repeat("Ab1!", 50000),
	}

	order := []CriterionID{Length8, Length12, Lowercase, Uppercase, Numbers, Special, NotCommon, NoRepeats, NoSequences}
	for _, in := range inputs {
		r := Evaluate(in)
		assert.GreaterOrEqual(t, r.Score, 0)
		assert.LessOrEqual(t, r.Score, 100)
		require.Len(t, r.Results, 9)
		for i, res := range r.Results {
			assert.Equal(t, order[i], res.ID)
		}
		assert.NotEmpty(t, r.CrackTime.Display)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, p := range []string{"", "password", "Tr0ub4dor&3", "ééé", strings.Repeat("x", 300)} {
		assert.Equal(t, Evaluate(p), Evaluate(p))
	}
}

func TestEvaluate_LengthBoundaries(t *testing.T) {
	r := Evaluate("xkmvtrbp")
	l8, _ := r.Result(Length8)
	l12, _ := r.Result(Length12)
	assert.True(t, l8.Passed)
	assert.False(t, l12.Passed)

	r = Evaluate("xkmvtrbpwlgh")
	l8, _ = r.Result(Length8)
	l12, _ = r.Result(Length12)
	assert.True(t, l8.Passed)
	assert.True(t, l12.Passed)

	// 5 code points, 10 bytes
	r = Evaluate("éèêëē")
	l8, _ = r.Result(Length8)
	assert.False(t, l8.Passed)

	r = Evaluate("éèêëēėęě")
	l8, _ = r.Result(Length8)
	assert.True(t, l8.Passed)
}

func TestEvaluate_Monotonic(t *testing.T) {
	steps := []string{"", "x", "xY", "xY7", "xY7$", "xY7$mQ2w", "xY7$mQ2wkP9!"}

	prev := -1
	for _, s := range steps {
		score := Evaluate(s).Score
		assert.GreaterOrEqual(t, score, prev, "score dropped at %q", s)
		prev = score
	}
	assert.Equal(t, 100, prev)
}

func TestEvaluate_Concurrent(t *testing.T) {
	passwords := []string{"", "password", "Tr0ub4dor&3xyz", "aaaaaaaa", "qwe", "Zx9!Zx9!"}
	want := make([]Report, len(passwords))
	for i, p := range passwords {
		want[i] = Evaluate(p)
	}

	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, p := range passwords {
				assert.Equal(t, want[i], Evaluate(p))
			}
		}()
	}
	wg.Wait()
}

func TestReport_Advice(t *testing.T) {
	r := Evaluate("password")
	assert.Equal(t, []string{"This is a commonly used password"}, r.Warnings())
	assert.Equal(t, []string{
		"Add uppercase letters",
		"Add numbers",
		"Add special characters",
		"Choose a unique password",
	}, r.Suggestions())
	assert.Equal(t, 4, r.Passed())

	r = Evaluate("Tr0ub4dor&3xyz")
	assert.Empty(t, r.Warnings())
	assert.Empty(t, r.Suggestions())

	// the empty password fails every criterion but is only told what it lacks
	r = Evaluate("")
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, 0, r.Passed())
	assert.Equal(t, []string{"Password is too short"}, r.Warnings())
	assert.Equal(t, []string{
		"Use at least 8 characters",
		"Add lowercase letters",
		"Add uppercase letters",
		"Add numbers",
		"Add special characters",
	}, r.Suggestions())
}

func TestEvaluate_RequiresInput(t *testing.T) {
	calls := 0
	criteria := []Criterion{
		{ID: "present", Label: "present", Weight: 50, Warning: "empty", Predicate: func(p string) bool { return p != "" }},
		{ID: "absent", Label: "absent", Weight: 50, Warning: "found", Suggestion: "remove it", RequiresInput: true,
			Predicate: func(p string) bool { calls++; return true }},
	}
	e, err := NewEvaluator(WithCriteria(criteria))
	require.NoError(t, err)

	r := e.Evaluate("")
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, []string{"empty"}, r.Warnings())
	assert.Empty(t, r.Suggestions())
	assert.Zero(t, calls)

	r = e.Evaluate("x")
	assert.Equal(t, 100, r.Score)
	assert.Equal(t, 1, calls)
}

func TestEvaluate_InvalidUTF8(t *testing.T) {
	r := Evaluate("\xff\xfe\xfd")
	res, ok := r.Result(NoRepeats)
	require.True(t, ok)
	assert.True(t, res.Passed)
	assert.NotContains(t, r.Warnings(), "Contains repeated characters")
}

func TestReport_JSON(t *testing.T) {
	data, err := json.Marshal(Evaluate("password"))
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.EqualValues(t, 35, out["score"])
	assert.Equal(t, "weak", out["level"])
	assert.Len(t, out["criteria"], 9)
	assert.Len(t, out["warnings"], 1)

	crack := out["crack_time"].(map[string]interface{})
	assert.Equal(t, "1 minute", crack["display"])
	assert.EqualValues(t, 26, crack["alphabet_size"])

	data, err = json.Marshal(Evaluate(""))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"log10_seconds":null`)
	assert.Contains(t, string(data), `"seconds":0`)

	data, err = json.Marshal(Evaluate(strings.Repeat("Ab1!", 1000)))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"seconds":null`)
}

func TestNewEvaluator_Fixtures(t *testing.T) {
	e, err := NewEvaluator(
		WithDictionary(NewWordSet("hunter2")),
		WithFragments([]string{"ABC"}),
	)
	require.NoError(t, err)

	r := e.Evaluate("hunter2")
	res, _ := r.Result(NotCommon)
	assert.False(t, res.Passed)

	r = e.Evaluate("password")
	res, _ = r.Result(NotCommon)
	assert.True(t, res.Passed)

	r = e.Evaluate("xxaBcxx")
	res, _ = r.Result(NoSequences)
	assert.False(t, res.Passed)

	r = e.Evaluate("qwerty")
	res, _ = r.Result(NoSequences)
	assert.True(t, res.Passed)
}

func TestNewEvaluator_RepeatRun(t *testing.T) {
	e, err := NewEvaluator(WithRepeatRun(4))
	require.NoError(t, err)

	res, _ := e.Evaluate("xaaay").Result(NoRepeats)
	assert.True(t, res.Passed)
	res, _ = e.Evaluate("xaaaay").Result(NoRepeats)
	assert.False(t, res.Passed)
}

func TestNewEvaluator_InvalidConfig(t *testing.T) {
	always := func(string) bool { return true }

	cases := []struct {
		name string
		opts []Option
		sum  bool
	}{
		{"weights below 100", []Option{WithCriteria([]Criterion{{ID: "a", Weight: 60, Predicate: always}})}, true},
		{"weights above 100", []Option{WithCriteria([]Criterion{
			{ID: "a", Weight: 60, Predicate: always},
			{ID: "b", Weight: 50, Predicate: always},
		})}, true},
		{"duplicate id", []Option{WithCriteria([]Criterion{
			{ID: "a", Weight: 50, Predicate: always},
			{ID: "a", Weight: 50, Predicate: always},
		})}, false},
		{"zero weight", []Option{WithCriteria([]Criterion{
			{ID: "a", Weight: 100, Predicate: always},
			{ID: "b", Weight: 0, Predicate: always},
		})}, false},
		{"nil predicate", []Option{WithCriteria([]Criterion{{ID: "a", Weight: 100}})}, false},
		{"empty table", []Option{WithCriteria([]Criterion{})}, false},
		{"nil dictionary", []Option{WithDictionary(nil)}, false},
		{"zero guess rate", []Option{WithGuessRate(0)}, false},
		{"zero symbol set", []Option{WithSymbolSetSize(0)}, false},
		{"repeat run of one", []Option{WithRepeatRun(1)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEvaluator(tc.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Equal(t, tc.sum, errors.Is(err, ErrWeightSum))
		})
	}

	assert.Panics(t, func() { MustNewEvaluator(WithGuessRate(-1)) })
}

func TestNewEvaluator_CustomWeights(t *testing.T) {
	e, err := NewEvaluator(WithCriteria([]Criterion{
		{ID: "long", Label: "Long", Weight: 70, Predicate: minLength(16)},
		{ID: "mixed", Label: "Mixed", Weight: 30, Predicate: func(p string) bool {
			c := classify(p)
			return c.lower && c.upper
		}},
	}))
	require.NoError(t, err)

	r := e.Evaluate("aaaaaaaaaaaaaaaa")
	assert.Equal(t, 70, r.Score)
	assert.Equal(t, Strong, r.Level)
	assert.Len(t, e.Criteria(), 2)
}

func TestDefaultCriteria_WeightsSumTo100(t *testing.T) {
	sum := 0
	for _, c := range Default().Criteria() {
		sum += c.Weight
	}
	assert.Equal(t, MaxScore, sum)
	assert.Len(t, Default().Criteria(), 9)
}

func TestLevelFor(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{-5, VeryWeak},
		{0, VeryWeak},
		{19, VeryWeak},
		{20, Weak},
		{39, Weak},
		{40, Moderate},
		{59, Moderate},
		{60, Strong},
		{79, Strong},
		{80, VeryStrong},
		{100, VeryStrong},
		{150, VeryStrong},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelFor(tc.score), "score %d", tc.score)
	}

	assert.Equal(t, "Very Strong", VeryStrong.String())
	assert.Equal(t, "very_weak", VeryWeak.Key())
}

func TestScore_Clamps(t *testing.T) {
	results := []CriterionResult{{Weight: 80, Passed: true}, {Weight: 80, Passed: true}, {Weight: 10}}
	assert.Equal(t, 100, Score(results))
	assert.Equal(t, 0, Score(nil))
}
