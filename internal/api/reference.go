// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

// ReferenceMaxLength is the longest password handed to zxcvbn. Its matching
// is super-linear in the password length.
const ReferenceMaxLength = 128

// Reference is the zxcvbn estimate shown next to our own score.
type Reference struct {
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

// NewReference runs zxcvbn on the password, nil when it is too long.
func NewReference(password string) *Reference {
	if utf8.RuneCountInString(password) > ReferenceMaxLength {
		return nil
	}

	entropy := zxcvbn.PasswordStrength(password, nil)
	return &Reference{
		Score:            entropy.Score,
		Entropy:          entropy.Entropy,
		CrackTimeDisplay: entropy.CrackTimeDisplay,
	}
}
