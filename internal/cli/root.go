// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"pwd-strength/internal/api"
	"pwd-strength/pkg/strength"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdcheck [COMMAND] [OPTIONS]",
		Short: "Check how strong a password is",
		Long: "Score passwords against weighted security criteria, estimate how long a brute-force attack " +
			"would take, and suggest improvements. Larger common-password lists can be compiled into a " +
			"GCS (Golomb Coded Set) file and used alongside the built-in list.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
	rootCmd.PersistentFlags().StringVar(&commonSet, "common-set", "", "GCS file of common passwords to check along with the built-in list")
	rootCmd.PersistentFlags().Float64Var(&guessRate, "guess-rate", strength.DefaultGuessesPerSecond, "Attacker guesses per second used for crack time estimates")
}

// newEvaluator builds the evaluator from the root flags. The returned func
// releases the common set, if any.
func newEvaluator() (*strength.Evaluator, func(), error) {
	return api.NewEvaluator(commonSet, guessRate)
}

func Execute() error {
	return rootCmd.Execute()
}
