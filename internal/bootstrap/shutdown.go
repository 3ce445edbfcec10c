package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/stackgrid/internal/server"
)

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server *server.Server
	// Inventories reports how many live inventories are lost on exit
	Inventories func() int
}

// GracefulShutdown stops accepting requests and lets in-flight ones finish
// within ctx. Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Inventories live in memory only
	if components.Inventories != nil {
		slog.Info(LogMsgInventoriesDropped, "count", components.Inventories())
	}

	slog.Info(LogMsgServerStopped)
}
