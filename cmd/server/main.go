// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pwd-strength/internal/api"
)

func main() {
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	evaluator, release, err := api.NewEvaluator(cfg.CommonSet, cfg.GuessRate)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing evaluator")
	}
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = api.Serve(ctx, cfg, api.NewRouter(evaluator)); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
