package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlgrid/internal/api"
	"github.com/ukaji3/xlgrid/pkg/xlgrid"
)

func newServeCmd() *cobra.Command {
	cfg := api.LoadConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve report rendering over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			opts := xlgrid.DefaultOptions()
			opts.Logger = logger
			srv := &http.Server{
				Addr:         cfg.Addr,
				Handler:      api.NewServer(logger, cfg, opts),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				<-ctx.Done()
				logger.Info("shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				srv.Shutdown(shutdownCtx)
			}()

			logger.Info("starting xlgrid", "addr", cfg.Addr, "max_body_bytes", cfg.MaxBodyBytes)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address (env XLGRID_ADDR)")
	cmd.Flags().Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "request body limit (env XLGRID_MAX_BODY_BYTES)")
	return cmd
}
