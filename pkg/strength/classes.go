// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

const (
	lowercaseSetSize = 26
	uppercaseSetSize = 26
	digitSetSize     = 10
)

// charClasses records which character classes appear in a password. Only
// ASCII letters and digits are classified; any other code point is special.
type charClasses struct {
	lower   bool
	upper   bool
	digit   bool
	special bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}

	return c
}

func (c charClasses) alphabetSize(symbolSetSize int) int {
	size := 0
	if c.lower {
		size += lowercaseSetSize
	}
	if c.upper {
		size += uppercaseSetSize
	}
	if c.digit {
		size += digitSetSize
	}
	if c.special {
		size += symbolSetSize
	}

	return size
}
