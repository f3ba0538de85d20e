// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math/bits"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"pwd-strength/internal/util"
	"pwd-strength/pkg/gcs"
)

var (
	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a GCS common-password set from a word list",
		Long: "Compile a newline separated list of common passwords into a GCS (Golomb Coded Set) file. " +
			"Use the file with --common-set to reject those passwords in addition to the built-in list.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return createCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	createCmd.Flags().Uint64VarP(&probability, "false-positive-rate", "p", 16777216, "False positive rate for queries, 1-in-p.")
	createCmd.Flags().Uint64VarP(&indexGranularity, "index-granularity", "g", 1024, "Entries per index point (16 bytes each).")
	createCmd.Flags().StringVarP(&inputFile, "in-file", "i", "", "Word list input file path, one password per line (required)")
	createCmd.MarkFlagRequired("in-file")
	createCmd.Flags().StringVarP(&outFile, "out-file", "o", "./common.gcs", "GCS file output path")
	createCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite any existing files while writing the results.")

	rootCmd.AddCommand(createCmd)
}

// estimateSetSize is an upper bound for the encoded set: a Golomb-Rice code
// takes log2(p) bits plus about two for the quotient per item.
func estimateSetSize(items, probability, granularity uint64) uint64 {
	size := items * uint64(bits.Len64(probability)+2) / 8
	if granularity > 0 {
		size += items / granularity * 16
	}
	return size + 64
}

func createCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	file, err := os.Open(inputFile)
	if err != nil {
		return err
	}

	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			log.Error().Err(err).Msg("error closing word list file")
		}
	}(file)

	abs, err := filepath.Abs(outFile)
	if err != nil {
		return fmt.Errorf("could not get absolute path of file: %w", err)
	}

	if !overwrite {
		if _, err = os.Stat(abs); !os.IsNotExist(err) {
			return fmt.Errorf("file %s exists and overwrite flag is not set", outFile)
		}
	}

	out, err := os.Create(abs)
	if err != nil {
		return err
	}

	defer func(out *os.File) {
		if err := out.Close(); err != nil {
			log.Error().Err(err).Msg("error closing GCS file")
		}
	}(out)

	builder := gcs.NewBuilder(file, out, probability, indexGranularity)
	if err = util.CheckDiskSpace(abs, estimateSetSize(builder.Estimated(), probability, indexGranularity)); err != nil {
		return err
	}

	if err = builder.Process(); err != nil {
		return err
	}

	log.Info().Msgf("common-password set written to %s", abs)
	return nil
}
