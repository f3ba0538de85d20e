// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"pwd-strength/pkg/gcs"
	"pwd-strength/pkg/strength"
)

// setCacheBlocks bounds the decoded values cached for common set lookups.
const setCacheBlocks = 1 << 20

// NewEvaluator builds the evaluator shared by the front ends. When commonSet
// names a GCS file it is consulted along with the built-in list. The returned
// func releases the set.
func NewEvaluator(commonSet string, guessRate float64) (*strength.Evaluator, func(), error) {
	opts := []strength.Option{strength.WithGuessRate(guessRate)}
	release := func() {}

	if commonSet != "" {
		set, err := gcs.Open(commonSet, setCacheBlocks)
		if err != nil {
			return nil, nil, err
		}

		opts = append(opts, strength.WithDictionary(strength.Dictionaries{strength.DefaultDictionary, set}))
		release = set.Close
	}

	evaluator, err := strength.NewEvaluator(opts...)
	if err != nil {
		release()
		return nil, nil, err
	}

	return evaluator, release, nil
}
