package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/jbjulia/mccmnc/api/v1"
	"github.com/jbjulia/mccmnc/internal/config"
	"github.com/jbjulia/mccmnc/internal/handlers"
	"github.com/jbjulia/mccmnc/internal/models"
	"github.com/jbjulia/mccmnc/internal/server"
	"github.com/jbjulia/mccmnc/internal/services"
	"github.com/jbjulia/mccmnc/internal/store"
	"github.com/jbjulia/mccmnc/pkg/parser"
	"github.com/jbjulia/mccmnc/pkg/registry"
	"github.com/jbjulia/mccmnc/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *globalOptions, defaults *config.Configuration) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lookup API over HTTP",
		Long: `Serve the lookup API over HTTP under /api/v1. Lookups read the store on
every request. POST /api/v1/update refreshes the store in the background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts.cfg)
		},
	}

	config.RegisterServerFlags(cmd.Flags(), defaults)

	return cmd
}

func runServe(ctx context.Context, cfg *config.Configuration) error {
	logger := zap.S().Named("serve")

	p, err := parser.New(cfg.Source.Format)
	if err != nil {
		return err
	}
	fileStore := store.NewFileStore(cfg.Store.Path)
	client := registry.NewClient(
		registry.WithTimeout(cfg.Source.Timeout),
		registry.WithMaxRetries(cfg.Source.MaxRetries),
	)

	var updaterOpts []services.UpdaterOption
	if cfg.Store.RawPath != "" {
		updaterOpts = append(updaterOpts, services.WithRawPath(cfg.Store.RawPath))
	}

	sched := scheduler.NewScheduler[*models.UpdateResult](1)
	defer sched.Close()

	updateSrv := services.NewUpdateService(sched, services.NewUpdater(client, p, fileStore, cfg.Source.URL, updaterOpts...))
	h := handlers.New(services.NewLookupService(fileStore), updateSrv)

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	updateSrv.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
