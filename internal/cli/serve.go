// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"pwd-strength/internal/api"
	"pwd-strength/internal/util"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the password strength API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand()
		},
	}
)

func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16VarP(&port, "port", "p", 3100, "Port to be used by the server")
	serveCmd.Flags().IntVar(&maxConnections, "max-connections", api.DefaultMaxConnections, "Maximum concurrent connections, 0 for no limit")

	rootCmd.AddCommand(serveCmd)
}

func serveConfig() api.Config {
	return api.Config{
		Port:           strconv.Itoa(int(port)),
		SelfTLS:        selfTLS,
		TLSCert:        tlsCert,
		TLSKey:         tlsKey,
		Debug:          verbose,
		CommonSet:      commonSet,
		GuessRate:      guessRate,
		MaxConnections: maxConnections,
	}
}

func serveCommand() error {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := serveConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	evaluator, release, err := newEvaluator()
	if err != nil {
		return err
	}
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return api.Serve(ctx, cfg, api.NewRouter(evaluator))
}
