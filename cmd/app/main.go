package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/AlbionStats_Go/docs"
	"github.com/osse101/AlbionStats_Go/internal/bootstrap"
	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/handler"
	"github.com/osse101/AlbionStats_Go/internal/server"
)

// @title Albion Stats API
// @version 1.0
// @description Solo hunts, group hunts, deaths and builds of an Albion Online group.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "albion-stats: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}

	catalog, err := bootstrap.LoadCatalog(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(db)
	services := bootstrap.InitializeServices(cfg, repos, catalog)
	srv := server.NewServer(cfg, db, services)
	jobs := bootstrap.StartBackgroundJobs(cfg, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error(bootstrap.LogMsgServerFailed, "error", err)
			bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Jobs: jobs, DB: db})
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Jobs: jobs, DB: db})
	return nil
}
