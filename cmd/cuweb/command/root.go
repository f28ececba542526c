// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the
// clean-utils web project. Commands are organized using the cobra
// library. The root command starts the web server itself while other
// sub-commands run one operation from the command line and print its
// result. The "db" sub-command manages the optional catalog database.
//
//	./cuweb [-c /path/of/main/config.yaml] [-l :8080] # start web server
//	./cuweb format [--mode upper|lower|default] TEXT
//	./cuweb day-type DAY
//	./cuweb square [-c /path/of/main/config.yaml] N
//	./cuweb process (--text TEXT | --number N)
//	./cuweb describe MAKE YEAR [MODEL]
//	./cuweb config show [-c /path/of/main/config.yaml]
//	./cuweb db init [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/momeni/clean-utils/pkg/adapter/config"
	"github.com/momeni/clean-utils/pkg/adapter/metrics"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin"
	"github.com/momeni/clean-utils/pkg/adapter/restful/gin/routes"
	"github.com/momeni/clean-utils/pkg/core/log"
	"github.com/momeni/clean-utils/pkg/core/repo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	cfgPath    string
	listenAddr string
)

// shutdownTimeout bounds the graceful shutdown of the web server,
// giving the in-flight requests (e.g., squaring ones) a chance to end.
const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:   "cuweb",
	Short: "A collection of small independent utility operations",
	Long: `A collection of small independent utility operations which
are served through a REST API and the command line, including the text
case normalization, rating filter, sequences concatenation, vehicle
description, text/number processing, most expensive product selection,
weekday/weekend classification, and a delayed squaring computation.
The operations are kept in the core layer, independent of the Gin
Gonic web framework, the GORM based catalog database, and prometheus
metrics which live in the adapters layer.
The web server listens on the --listen address and shuts down
gracefully on SIGINT or SIGTERM signals.`,
	RunE:          startWebServer,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	l := c.Log.Install(os.Stderr)
	log.Info(ctx, "configs are loaded", slog.Any("configs", c))
	var p repo.Pool
	if c.Database.Enabled() {
		p, err = c.Database.ConnectionPool(ctx)
		if err != nil {
			return fmt.Errorf("creating DB pool: %w", err)
		}
		defer p.Close()
	} else {
		log.Warn(ctx, "database is not configured, catalog is disabled")
	}
	var e *gin.Engine = c.Gin.NewEngine(l)
	m := metrics.New(prometheus.NewRegistry())
	if err = routes.Register(e, c, p, m); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	return serve(ctx, e)
}

// serve runs an HTTP server for the h handler until the ctx is done or
// a termination signal is received, and then shuts it down gracefully.
func serve(ctx context.Context, h http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(ctx, "listening", slog.String("addr", listenAddr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("running web server: %w", err)
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(
			context.WithoutCancel(ctx), shutdownTimeout,
		)
		defer cancel()
		log.Info(ctx, "shutting down web server")
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("shutting down web server: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
	rootCmd.Flags().StringVarP(
		&listenAddr, "listen", "l", ":8080", "web server listen address",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
