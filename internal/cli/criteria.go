// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"io"

	"github.com/spf13/cobra"
)

var (
	criteriaCmd = &cobra.Command{
		Use:   "criteria",
		Short: "List the criteria passwords are scored against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return criteriaCommand(cmd.OutOrStdout())
		},
	}
)

func init() {
	criteriaCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the criteria as JSON")

	rootCmd.AddCommand(criteriaCmd)
}

func criteriaCommand(out io.Writer) error {
	evaluator, release, err := newEvaluator()
	if err != nil {
		return err
	}
	defer release()

	return renderCriteria(out, evaluator.Criteria(), jsonOutput)
}
