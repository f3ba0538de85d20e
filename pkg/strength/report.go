// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import "encoding/json"

// CriterionResult is the outcome of one criterion, carrying a copy of its
// metadata so a report stands on its own.
type CriterionResult struct {
	ID         CriterionID `json:"id"`
	Label      string      `json:"label"`
	Weight     int         `json:"weight"`
	Rationale  string      `json:"rationale"`
	Warning    string      `json:"-"`
	Suggestion string      `json:"-"`
	Passed     bool        `json:"passed"`

	// noInput marks a failure caused only by the password being empty.
	// Such failures carry no advice.
	noInput bool
}

// Report is the verdict for one password. Results follow the criteria
// declaration order.
type Report struct {
	Score     int               `json:"score"`
	Level     Level             `json:"level"`
	Results   []CriterionResult `json:"criteria"`
	CrackTime CrackTime         `json:"crack_time"`
}

// Result looks up the result of a criterion by id.
func (r Report) Result(id CriterionID) (CriterionResult, bool) {
	for _, res := range r.Results {
		if res.ID == id {
			return res, true
		}
	}

	return CriterionResult{}, false
}

// Passed counts the criteria the password satisfied.
func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// Warnings lists the warnings of failed criteria, in criteria order.
func (r Report) Warnings() []string {
	var out []string
	for _, res := range r.Results {
		if !res.Passed && !res.noInput && res.Warning != "" {
			out = append(out, res.Warning)
		}
	}
	return out
}

// Suggestions lists the suggestions of failed criteria, in criteria order.
func (r Report) Suggestions() []string {
	var out []string
	for _, res := range r.Results {
		if !res.Passed && !res.noInput && res.Suggestion != "" {
			out = append(out, res.Suggestion)
		}
	}
	return out
}

// MarshalJSON adds the derived warnings and suggestions to the report fields.
func (r Report) MarshalJSON() ([]byte, error) {
	type report Report
	return json.Marshal(struct {
		report
		Warnings    []string `json:"warnings"`
		Suggestions []string `json:"suggestions"`
	}{
		report:      report(r),
		Warnings:    orEmpty(r.Warnings()),
		Suggestions: orEmpty(r.Suggestions()),
	})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
