package main

import (
	"context"
	"time"

	"github.com/dtroode/noteshare-server/internal/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// watchStorage mirrors the result of check into the overall serving status
// until ctx is done.
func watchStorage(ctx context.Context, check func(context.Context) error, interval time.Duration, healthServer *health.Server, logger *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status := healthpb.HealthCheckResponse_SERVING
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		if err := check(checkCtx); err != nil {
			logger.Warn("storage health check failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
		cancel()
		healthServer.SetServingStatus("", status)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
