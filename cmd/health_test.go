package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func servingStatus(hs *health.Server) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.GetStatus()
}

func TestWatchStorage(t *testing.T) {
	hs := health.NewServer()
	log := logger.NewWithWriter(io.Discard, int(slog.LevelDebug))

	var failing atomic.Bool
	check := func(context.Context) error {
		if failing.Load() {
			return errors.New("database is down")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		watchStorage(ctx, check, 10*time.Millisecond, hs, log)
	}()

	assert.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	failing.Store(true)
	assert.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	failing.Store(false)
	assert.Eventually(t, func() bool {
		return servingStatus(hs) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchStorage did not stop after cancellation")
	}
}
