// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/netutil"

	"pwd-strength/pkg/strength"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires the API routes and middleware around the evaluator.
func NewRouter(evaluator *strength.Evaluator) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.SetLogger(
		logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
			return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
		}),
		logger.WithSkipPath([]string{"/healthz"}),
	))
	router.Use(securityHeaders())
	router.Use(bodyLimit(MaxBodyBytes))

	router.GET("/healthz", healthz)

	v1 := router.Group("/v1")
	RegisterCheckApi(v1, evaluator)

	return router
}

// TLSConfig loads the configured certificate pair, or generates a self-signed
// one when SelfTLS is set.
func TLSConfig(cfg Config) (*tls.Config, error) {
	if cfg.TLSCert != "" && cfg.TLSKey != "" {
		pair, err := tls.LoadX509KeyPair(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return nil, fmt.Errorf("error loading TLS certificate: %w", err)
		}

		return &tls.Config{Certificates: []tls.Certificate{pair}, MinVersion: tls.VersionTLS12}, nil
	}

	if !cfg.SelfTLS {
		return nil, errors.New("server requires TLS configuration to start, " +
			"use a self-signed certificate or set a certificate and key")
	}

	log.Warn().Msg("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return nil, fmt.Errorf("error generating auto self-signed certificate: %w", err)
	}

	pair, err := tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
	if err != nil {
		return nil, fmt.Errorf("error using auto self-signed certificate: %w", err)
	}

	return &tls.Config{Certificates: []tls.Certificate{pair}, MinVersion: tls.VersionTLS12}, nil
}

// Serve runs the TLS server until ctx is done, then shuts it down gracefully.
// Concurrent connections are capped at cfg.MaxConnections when positive.
func Serve(ctx context.Context, cfg Config, handler http.Handler) error {
	tlsConfig, err := TLSConfig(cfg)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return err
	}
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	srv := &http.Server{
		Handler:           handler,
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", ln.Addr())
		// certificates come from the TLS config, no need to pass files
		if err := srv.ServeTLS(ln, "", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err, ok := <-errs:
		if ok {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("server shutdown")
		return err
	}

	log.Info().Msg("server exiting...")
	return nil
}
