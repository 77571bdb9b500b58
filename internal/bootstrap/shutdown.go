package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Jobs   *BackgroundJobs
	DB     *database.DB
}

// GracefulShutdown stops the HTTP server, then the background jobs, and
// closes the database last since both still use it. Errors are logged and
// do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Jobs != nil {
		slog.Info(LogMsgStoppingJobs)
		components.Jobs.Stop()
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		if err := components.DB.Close(); err != nil {
			slog.Error(ErrMsgFailedCloseDatabase, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
