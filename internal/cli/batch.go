// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"io"
	"runtime"
	"strings"

	"github.com/thinhdanggroup/executor"

	"pwd-strength/internal/api"
	"pwd-strength/pkg/strength"
)

// Below this many passwords the pool costs more than it saves.
const parallelThreshold = 64

// evaluateAll evaluates every password, returning the reports and zxcvbn
// references in input order. Large batches run on a bounded worker pool of
// the given size; less than 1 means one worker per logical processor.
func evaluateAll(evaluator *strength.Evaluator, passwords []string, workers int) ([]strength.Report, []*api.Reference, error) {
	reports := make([]strength.Report, len(passwords))
	refs := make([]*api.Reference, len(passwords))

	evaluate := func(i int) {
		reports[i] = evaluator.Evaluate(passwords[i])
		refs[i] = api.NewReference(passwords[i])
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	if len(passwords) < parallelThreshold || workers == 1 {
		for i := range passwords {
			evaluate(i)
		}
		return reports, refs, nil
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * workers,
		NumWorkers:    workers,
	})
	if err != nil {
		return nil, nil, err
	}
	defer pool.Close()

	stat := newProgress(len(passwords))
	stat.Begin()

	for i := range passwords {
		task := func(i int) {
			evaluate(i)
			stat.Evaluated()
		}
		if err = pool.Publish(task, i); err != nil {
			stat.Done()
			return nil, nil, err
		}
	}

	pool.Wait()
	stat.Done()

	return reports, refs, nil
}

// readPasswords reads one password per line. Blank lines are skipped and
// Windows line endings trimmed.
func readPasswords(r io.Reader) ([]string, error) {
	var passwords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		passwords = append(passwords, line)
	}

	return passwords, scanner.Err()
}
