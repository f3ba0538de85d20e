// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import "pwd-strength/pkg/strength"

// MaxBatchSize bounds the passwords accepted by one batch request.
const MaxBatchSize = 100

type checkRequest struct {
	// A pointer so an empty password is accepted while a missing one is not.
	Password *string `json:"password" binding:"required"`
}

// The max tag must equal MaxBatchSize.
type batchRequest struct {
	Passwords []string `json:"passwords" binding:"required,min=1,max=100"`
}

type checkResponse struct {
	Score       int                        `json:"score"`
	Level       strength.Level             `json:"level"`
	Criteria    []strength.CriterionResult `json:"criteria"`
	CrackTime   strength.CrackTime         `json:"crack_time"`
	Warnings    []string                   `json:"warnings"`
	Suggestions []string                   `json:"suggestions"`
	Reference   *Reference                 `json:"zxcvbn"`
}

func newCheckResponse(r strength.Report, ref *Reference) checkResponse {
	return checkResponse{
		Score:       r.Score,
		Level:       r.Level,
		Criteria:    r.Results,
		CrackTime:   r.CrackTime,
		Warnings:    orEmpty(r.Warnings()),
		Suggestions: orEmpty(r.Suggestions()),
		Reference:   ref,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type criterionResponse struct {
	ID        strength.CriterionID `json:"id"`
	Label     string               `json:"label"`
	Weight    int                  `json:"weight"`
	Rationale string               `json:"rationale"`
}

type errorResponse struct {
	Error string `json:"error"`
}
