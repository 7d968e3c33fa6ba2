package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workspace-hub/backend/internal/config"
	"workspace-hub/backend/internal/db"
	healthhandler "workspace-hub/backend/internal/health/handler"
	"workspace-hub/backend/internal/policy/engine"
	"workspace-hub/backend/internal/server"
	otelsetup "workspace-hub/backend/internal/telemetry/otel"
	"workspace-hub/backend/internal/workspace/repository"
	wsservice "workspace-hub/backend/internal/workspace/service"
)

const serviceName = "workspace"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := otelsetup.NewProviders(ctx, cfg.OTelEndpoint, "workspace-hub-"+serviceName, cfg.OTelInsecure)
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

	// Schema is applied by cmd/migrate.
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer conn.Close()

	policy, err := engine.NewOPAEvaluator(ctx, engine.InvitationPolicy)
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	svc := wsservice.NewService(repository.NewPostgresRepository(conn), policy, wsservice.Config{
		InvitationTTL: cfg.InvitationTTL(),
		InviteBaseURL: cfg.InviteBaseURL,
	})

	health := healthhandler.NewServer(serviceName,
		healthhandler.PingCheck("postgres", conn),
		healthhandler.PolicyCheck(policy),
	)
	go health.Run(ctx, 15*time.Second)

	s := server.NewGRPCServer(server.Options{})
	server.RegisterServices(s, server.Deps{Workspace: svc, Health: health})

	if err := server.Serve(ctx, cfg.WorkspaceGRPCAddr, s); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
