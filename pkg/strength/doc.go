// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength scores passwords against a fixed, weighted criteria table
// and estimates how long a brute-force search would take.
//
// Evaluation is pure: the same password always produces the same Report, and
// an Evaluator can be shared between goroutines.
package strength
