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
	"workspace-hub/backend/internal/db/migrate"
	healthhandler "workspace-hub/backend/internal/health/handler"
	identityrepo "workspace-hub/backend/internal/identity/repository"
	identityservice "workspace-hub/backend/internal/identity/service"
	"workspace-hub/backend/internal/security"
	"workspace-hub/backend/internal/server"
	otelsetup "workspace-hub/backend/internal/telemetry/otel"
	userrepo "workspace-hub/backend/internal/user/repository"
)

const serviceName = "identity"

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

	conn, err := db.OpenSQLite(cfg.IdentityDBPath)
	if err != nil {
		log.Fatalf("identity db: %v", err)
	}
	defer conn.Close()
	if err := migrate.Up(conn, migrate.StoreIdentity); err != nil {
		log.Fatalf("migrate identity: %v", err)
	}

	priv, pub, err := security.LoadKeyPair(cfg.JWTPrivateKey, cfg.JWTPublicKey)
	if err != nil {
		log.Fatalf("jwt keys: %v", err)
	}
	tokens := security.NewTokenProvider(priv, pub, cfg.JWTIssuer, cfg.JWTAudience, cfg.AccessTTL())
	auth := identityservice.NewAuthService(
		userrepo.NewSQLiteRepository(conn),
		identityrepo.NewSQLiteRepository(conn),
		security.NewHasher(cfg.BcryptCost),
		tokens,
	)

	health := healthhandler.NewServer(serviceName, healthhandler.PingCheck("sqlite", conn))
	go health.Run(ctx, 15*time.Second)

	s := server.NewGRPCServer(server.Options{})
	server.RegisterServices(s, server.Deps{Auth: auth, Health: health})

	if err := server.Serve(ctx, cfg.IdentityGRPCAddr, s); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
