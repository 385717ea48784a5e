package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/noteshare-server/internal/access"
	grpcctx "github.com/dtroode/noteshare-server/internal/api/grpc/context"
	"github.com/dtroode/noteshare-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/noteshare-server/internal/api/grpc/server"
	"github.com/dtroode/noteshare-server/internal/config"
	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/dtroode/noteshare-server/internal/password"
	"github.com/dtroode/noteshare-server/internal/repository/memory"
	"github.com/dtroode/noteshare-server/internal/repository/postgres"
	"github.com/dtroode/noteshare-server/internal/server"
	"github.com/dtroode/noteshare-server/internal/service"
	"github.com/dtroode/noteshare-server/internal/token"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userStore, noteStore, checkStorage, closeStores := openStores(ctx, cfg, logger)
	defer closeStores()

	hasher, err := password.NewBcrypt(cfg.Password.Cost)
	if err != nil {
		logger.Fatal("failed to initialize password hasher", "error", err)
	}
	sessions, err := token.NewJWT(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		logger.Fatal("failed to initialize session manager", "error", err)
	}

	authService := service.NewAuth(userStore, hasher, sessions, logger)
	noteService := service.NewNote(noteStore, access.NewController(), logger)
	ctxMgr := grpcctx.NewManager()

	healthServer := health.NewServer()
	grpcServer := registerGRPCServer(logger, authService, noteService, sessions, ctxMgr, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))

	if checkStorage != nil {
		go watchStorage(ctx, checkStorage, cfg.Database.HealthCheckInterval, healthServer, logger)
	}

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		logger.Warn("TLS is disabled, session tokens are sent in clear text")
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openStores connects to Postgres, or falls back to process memory when no DSN is configured.
// The returned health check is nil for in-memory storage.
func openStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.UserStore, model.NoteStore, func(context.Context) error, func()) {
	if cfg.Database.DSN == "" {
		logger.Warn("DATABASE_DSN is empty, using in-memory storage")
		db := memory.NewDatabase()
		return memory.NewUserRepository(db), memory.NewNoteRepository(db), nil, func() {}
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}

	return postgres.NewUserRepository(conn), postgres.NewNoteRepository(conn), conn.HealthCheck, func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database connection", "error", err)
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	authService *service.Auth,
	noteService *service.Note,
	sessions *token.JWT,
	ctxMgr model.ContextManager,
	healthServer *health.Server,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(authService, noteService, sessions, ctxMgr, logger)
	s := r.Register()

	healthpb.RegisterHealthServer(s, healthServer)
	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
