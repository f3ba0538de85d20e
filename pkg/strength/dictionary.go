// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// Dictionary answers whether a password is a known weak or frequently used
// one. Lookups are exact and case-sensitive.
type Dictionary interface {
	Contains(password string) bool
}

// WordSet is an in-memory Dictionary. It is never modified after NewWordSet
// returns, so it can be shared freely.
type WordSet struct {
	words map[string]struct{}
}

func NewWordSet(words ...string) WordSet {
	s := WordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.words[w] = struct{}{}
	}

	return s
}

func (s WordSet) Contains(password string) bool {
	_, ok := s.words[password]
	return ok
}

func (s WordSet) Len() int {
	return len(s.words)
}

// Dictionaries is the union of several dictionaries. Nil members are skipped.
type Dictionaries []Dictionary

func (d Dictionaries) Contains(password string) bool {
	for _, dict := range d {
		if dict != nil && dict.Contains(password) {
			return true
		}
	}

	return false
}

// DefaultCommonPasswords is the built-in list behind DefaultDictionary.
var DefaultCommonPasswords = []string{
	"password", "123456", "password123", "admin", "qwerty",
	"letmein", "welcome", "monkey", "1234567890", "abc123",
	"password1", "123456789", "welcome123", "admin123", "root",
	"toor", "pass", "test", "guest", "login", "master", "hello",
	"sunshine", "princess", "football", "charlie", "aa123456",
	"12345678", "12345", "1234567", "111111", "000000", "123123",
	"11111111", "aaaaaaaa", "iloveyou", "dragon", "superman",
	"baseball", "shadow", "trustno1", "qwerty123", "1q2w3e4r",
	"qwertyuiop", "passw0rd", "starwars", "michael", "jennifer",
}

// DefaultDictionary is built once and shared by every evaluator that does not
// supply its own.
var DefaultDictionary = NewWordSet(DefaultCommonPasswords...)
