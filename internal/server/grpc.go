package server

import (
	"context"
	"log"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	identityv1 "workspace-hub/backend/api/identity/v1"
	invitationv1 "workspace-hub/backend/api/invitation/v1"
	workspacev1 "workspace-hub/backend/api/workspace/v1"
	healthhandler "workspace-hub/backend/internal/health/handler"
	identityhandler "workspace-hub/backend/internal/identity/handler"
	identityservice "workspace-hub/backend/internal/identity/service"
	invitationhandler "workspace-hub/backend/internal/invitation/handler"
	invitationservice "workspace-hub/backend/internal/invitation/service"
	"workspace-hub/backend/internal/ratelimit"
	"workspace-hub/backend/internal/security"
	"workspace-hub/backend/internal/server/interceptors"
	workspacehandler "workspace-hub/backend/internal/workspace/handler"
	workspaceservice "workspace-hub/backend/internal/workspace/service"
)

// Options configures the interceptor chain of a gRPC server.
type Options struct {
	// Tokens validates Bearer access tokens. If nil, no auth interceptor is installed (internal services).
	Tokens *security.TokenProvider
	// PublicMethods may be called without a token. Only used with Tokens.
	PublicMethods map[string]bool
	// Limiter and RateLimits bound calls per client IP on the listed methods. If Limiter is nil, nothing is limited.
	Limiter    ratelimit.Limiter
	RateLimits map[string]interceptors.RateLimit
	// SkipAudit is the set of methods not written to the access log.
	SkipAudit map[string]bool
}

// NewGRPCServer returns a server with the OTel stats handler and the interceptor chain
// auth → rate limit → access log.
func NewGRPCServer(opts Options) *grpc.Server {
	var chain []grpc.UnaryServerInterceptor
	if opts.Tokens != nil {
		chain = append(chain, interceptors.AuthUnary(opts.Tokens, opts.PublicMethods))
	}
	if opts.Limiter != nil {
		chain = append(chain, interceptors.RateLimitUnary(opts.Limiter, opts.RateLimits))
	}
	skip := opts.SkipAudit
	if skip == nil {
		skip = map[string]bool{healthpb.Health_Check_FullMethodName: true}
	}
	chain = append(chain, interceptors.AuditUnary(skip))
	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(chain...),
	)
}

// Deps holds the services a binary exposes. Nil services are not registered.
type Deps struct {
	// Auth backs IdentityService.
	Auth *identityservice.AuthService
	// Workspace backs WorkspaceService.
	Workspace *workspaceservice.Service
	// Orchestrator backs the public InvitationService.
	Orchestrator *invitationservice.Orchestrator
	// Health serves grpc.health.v1.
	Health *healthhandler.Server
}

// RegisterServices registers the services present in deps with s.
//
// Service → handler mapping:
//   - IdentityService   → internal/identity/handler
//   - WorkspaceService  → internal/workspace/handler
//   - InvitationService → internal/invitation/handler
//   - grpc.health.v1    → internal/health/handler
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	if deps.Auth != nil {
		identityv1.RegisterIdentityServiceServer(s, identityhandler.NewServer(deps.Auth))
	}
	if deps.Workspace != nil {
		workspacev1.RegisterWorkspaceServiceServer(s, workspacehandler.NewServer(deps.Workspace))
	}
	if deps.Orchestrator != nil {
		invitationv1.RegisterInvitationServiceServer(s, invitationhandler.NewServer(deps.Orchestrator))
	}
	if deps.Health != nil {
		deps.Health.Register(s)
	}
}

// InvitationPublicMethods are the orchestrator methods callable without an access token.
func InvitationPublicMethods() map[string]bool {
	return map[string]bool{
		invitationv1.InvitationService_GetInvitation_FullMethodName:          true,
		invitationv1.InvitationService_ValidateInvitation_FullMethodName:     true,
		invitationv1.InvitationService_DeclineInvitation_FullMethodName:      true,
		invitationv1.InvitationService_RegisterWithInvitation_FullMethodName: true,
		healthpb.Health_Check_FullMethodName:                                 true,
		healthpb.Health_Watch_FullMethodName:                                 true,
	}
}

// PublicRateLimits applies limit per window to each token-bearing public method.
func PublicRateLimits(limit int, window time.Duration) map[string]interceptors.RateLimit {
	rl := interceptors.RateLimit{Limit: limit, Window: window}
	return map[string]interceptors.RateLimit{
		invitationv1.InvitationService_GetInvitation_FullMethodName:          rl,
		invitationv1.InvitationService_ValidateInvitation_FullMethodName:     rl,
		invitationv1.InvitationService_DeclineInvitation_FullMethodName:      rl,
		invitationv1.InvitationService_RegisterWithInvitation_FullMethodName: rl,
	}
}

// Serve listens on addr and serves s until ctx is done, then stops gracefully.
func Serve(ctx context.Context, addr string, s *grpc.Server) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("gRPC server listening on %s", lis.Addr())
		errCh <- s.Serve(lis)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("shutting down gRPC server...")
	s.GracefulStop()
	log.Println("gRPC server stopped")
	return nil
}
