package router

import (
	"context"
	"strings"

	notesv1 "github.com/dtroode/noteshare-server/api/notes/v1"
	"github.com/dtroode/noteshare-server/internal/api/grpc/handler"
	"github.com/dtroode/noteshare-server/internal/api/grpc/middleware"
	"github.com/dtroode/noteshare-server/internal/logger"
	"github.com/dtroode/noteshare-server/internal/model"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
)

// Router wires handlers and interceptors into a gRPC server.
type Router struct {
	authService    handler.AuthService
	noteService    handler.NoteService
	sessions       middleware.SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	authService handler.AuthService,
	noteService handler.NoteService,
	sessions middleware.SessionResolver,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authSkip excludes the Auth service, whose handlers read the token themselves.
func authSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+notesv1.Auth_ServiceDesc.ServiceName+"/")
}

// Register builds the gRPC server with logging and subject resolution interceptors.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.sessions, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authSkip),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerNoteRoutes(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.sessions, r.logger)
	notesv1.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerNoteRoutes(server *grpc.Server) {
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)
	notesv1.RegisterNotesServer(server, noteHandler)
}
