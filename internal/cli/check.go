// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/api"
	"pwd-strength/internal/util"
	"pwd-strength/pkg/strength"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD...]",
		Short: "Evaluate the strength of one or more passwords",
		Long: "Evaluate passwords given as arguments, read from a file (one per line) or typed in an " +
			"interactive session with hidden input.",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive && inputFile == "" {
				if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCommand(cmd.OutOrStdout(), args)
		},
	}
)

func init() {
	checkCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "File with one password per line to evaluate")
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode.")
	checkCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of workers for large batches. If omitted or less than 1, defaults to the number of logical processors of the machine.")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the reports as JSON")
	checkCmd.Flags().BoolVar(&showTips, "tips", true, "Print security best practices after the reports")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(out io.Writer, args []string) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	evaluator, release, err := newEvaluator()
	if err != nil {
		return err
	}
	defer release()

	if interactive {
		prompt := promptui.Prompt{
			Label: "Enter password (hidden)",
			Mask:  '*',
		}

		log.Info().Msg("running interactive session. Type 'quit' or 'exit' to stop")
		if err = runInteractiveSession(prompt, evaluator, out); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msg("Goodbye! Stay secure!")
				// No return to avoid the default cobra error message
				return nil
			}
			return fmt.Errorf("error during interactive session: %w", err)
		}

		log.Info().Msg("Goodbye! Stay secure!")
		return nil
	}

	passwords := args
	if inputFile != "" {
		fromFile, err := readPasswordFile(inputFile)
		if err != nil {
			return err
		}
		passwords = append(passwords, fromFile...)
	}

	return checkPasswords(out, evaluator, passwords)
}

func checkPasswords(out io.Writer, evaluator *strength.Evaluator, passwords []string) error {
	reports, refs, err := evaluateAll(evaluator, passwords, threads)
	if err != nil {
		return err
	}

	return renderBatch(out, reports, refs, jsonOutput, showTips)
}

func readPasswordFile(fileName string) ([]string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}

	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing passwords file")
		}
	}(file)

	return readPasswords(file)
}

// runInteractiveSession prompts until the user quits. It returns nil when the
// session ends with an exit word, or the prompt error otherwise.
func runInteractiveSession(prompt promptui.Prompt, evaluator *strength.Evaluator, out io.Writer) error {
	for {
		result, err := prompt.Run()
		if err != nil {
			return err
		}

		if isExitInput(result) {
			return nil
		}

		report := evaluator.Evaluate(result)
		if jsonOutput {
			if err = renderBatch(out, []strength.Report{report}, []*api.Reference{api.NewReference(result)}, true, false); err != nil {
				return err
			}
			continue
		}

		renderReport(out, report, api.NewReference(result))
		if showTips {
			renderTips(out)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, rule("-"))
	}
}

func isExitInput(input string) bool {
	switch strings.ToLower(input) {
	case "", "quit", "exit":
		return true
	}
	return false
}
