// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/util"
)

// samplePasswords run from very weak to very strong.
var samplePasswords = []string{
	"123456",
	"password",
	"Password1",
	"MyP@ssw0rd",
	"Tr0ub4dor&3",
	"correct-horse-battery-staple-2024!",
}

var (
	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Evaluate a set of sample passwords to demonstrate the tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demoCommand(cmd.OutOrStdout())
		},
	}
)

func init() {
	demoCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the reports as JSON")
	demoCmd.Flags().BoolVar(&showTips, "tips", true, "Print security best practices after the reports")

	rootCmd.AddCommand(demoCmd)
}

func demoCommand(out io.Writer) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	evaluator, release, err := newEvaluator()
	if err != nil {
		return err
	}
	defer release()

	log.Info().Msg("analyzing sample passwords to demonstrate the tool")
	return checkPasswords(out, evaluator, samplePasswords)
}
