// Server runs the Invitation Orchestrator: the public InvitationService in front of the
// Identity and Workspace services.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workspace-hub/backend/internal/config"
	healthhandler "workspace-hub/backend/internal/health/handler"
	identityclient "workspace-hub/backend/internal/identity/client"
	invitationservice "workspace-hub/backend/internal/invitation/service"
	"workspace-hub/backend/internal/notification"
	"workspace-hub/backend/internal/platform/rpc"
	"workspace-hub/backend/internal/policy/engine"
	"workspace-hub/backend/internal/ratelimit"
	"workspace-hub/backend/internal/security"
	"workspace-hub/backend/internal/server"
	otelsetup "workspace-hub/backend/internal/telemetry/otel"
	workspaceclient "workspace-hub/backend/internal/workspace/client"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := otelsetup.NewProviders(ctx, cfg.OTelEndpoint, "workspace-hub-orchestrator", cfg.OTelInsecure)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := providers.Shutdown(sctx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	identityConn, err := rpc.NewClient(cfg.IdentityServiceAddr)
	if err != nil {
		log.Fatalf("identity client: %v", err)
	}
	defer identityConn.Close()
	workspaceConn, err := rpc.NewClient(cfg.WorkspaceServiceAddr)
	if err != nil {
		log.Fatalf("workspace client: %v", err)
	}
	defer workspaceConn.Close()

	// The orchestrator only verifies access tokens; signing stays in the Identity Service.
	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	tokens := security.NewTokenProvider(nil, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())

	policy, err := engine.NewOPAEvaluator(ctx, engine.InvitationPolicy)
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	publisher := notification.NewKafkaPublisher(cfg.KafkaBrokersList(), cfg.NotificationKafkaTopic)
	if publisher == nil {
		log.Println("notification: KAFKA_BROKERS not set, invitation.created events are not published")
	}

	opts := []invitationservice.Option{invitationservice.WithPolicy(policy)}
	if publisher != nil {
		opts = append(opts, invitationservice.WithPublisher(publisher))
	}
	orch := invitationservice.New(
		identityclient.New(identityConn, cfg.CommandTimeout()),
		workspaceclient.New(workspaceConn, cfg.CommandTimeout()),
		opts...,
	)

	limiter := ratelimit.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer limiter.Close()

	health := healthhandler.NewServer("orchestrator",
		healthhandler.PolicyCheck(policy),
		healthhandler.UpstreamCheck("identity", identityConn),
		healthhandler.UpstreamCheck("workspace", workspaceConn),
	)
	go health.Run(ctx, 15*time.Second)

	srvOpts := server.Options{
		Tokens:        tokens,
		PublicMethods: server.InvitationPublicMethods(),
	}
	if cfg.PublicRateLimit > 0 {
		srvOpts.Limiter = limiter
		srvOpts.RateLimits = server.PublicRateLimits(cfg.PublicRateLimit, cfg.PublicRateWindow())
	}
	s := server.NewGRPCServer(srvOpts)
	server.RegisterServices(s, server.Deps{Orchestrator: orch, Health: health})

	if err := server.Serve(ctx, cfg.GRPCAddr, s); err != nil {
		log.Fatalf("serve: %v", err)
	}

	if publisher != nil {
		time.Sleep(notification.ShutdownDrainDuration)
		if err := publisher.Close(); err != nil {
			log.Printf("notification: close publisher: %v", err)
		}
	}
}
