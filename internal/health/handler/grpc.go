// Package handler serves grpc.health.v1 for each binary. Readiness is recomputed from a set of
// dependency checks: the database, the policy engine, and the upstream services.
package handler

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PolicyChecker is satisfied by the OPA evaluator.
type PolicyChecker interface {
	HealthCheck(ctx context.Context) error
}

// Check is one readiness dependency.
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

// PingCheck checks a database.
func PingCheck(name string, p Pinger) Check {
	return Check{Name: name, Fn: p.PingContext}
}

// PolicyCheck checks the policy engine.
func PolicyCheck(p PolicyChecker) Check {
	return Check{Name: "policy", Fn: p.HealthCheck}
}

// UpstreamCheck asks another service's health endpoint whether it is serving.
func UpstreamCheck(name string, cc grpc.ClientConnInterface) Check {
	client := healthpb.NewHealthClient(cc)
	return Check{Name: name, Fn: func(ctx context.Context) error {
		// Service clients default to the JSON codec; health messages are protobuf.
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{}, grpc.CallContentSubtype("proto"))
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return errNotServing{name: name, status: resp.GetStatus()}
		}
		return nil
	}}
}

type errNotServing struct {
	name   string
	status healthpb.HealthCheckResponse_ServingStatus
}

func (e errNotServing) Error() string {
	return e.name + " reports " + e.status.String()
}

// Server is the grpc.health.v1 server. The overall service ("") and serviceName share one status.
type Server struct {
	*health.Server
	serviceName string
	checks      []Check
	timeout     time.Duration
}

// NewServer returns a health server reporting serviceName. With no checks it is always SERVING.
func NewServer(serviceName string, checks ...Check) *Server {
	s := &Server{
		Server:      health.NewServer(),
		serviceName: serviceName,
		checks:      checks,
		timeout:     2 * time.Second,
	}
	s.set(healthpb.HealthCheckResponse_SERVING)
	return s
}

// Register adds the health service to srv.
func (s *Server) Register(srv grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(srv, s.Server)
}

// Refresh runs every check and updates the serving status. Returns the first failure.
func (s *Server) Refresh(ctx context.Context) error {
	for _, c := range s.checks {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		err := c.Fn(cctx)
		cancel()
		if err != nil {
			log.Printf("health: %s check failed: %v", c.Name, err)
			s.set(healthpb.HealthCheckResponse_NOT_SERVING)
			return err
		}
	}
	s.set(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Run refreshes the status every interval until ctx is done.
func (s *Server) Run(ctx context.Context, interval time.Duration) {
	if len(s.checks) == 0 {
		return
	}
	_ = s.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

func (s *Server) set(st healthpb.HealthCheckResponse_ServingStatus) {
	s.SetServingStatus("", st)
	if s.serviceName != "" {
		s.SetServingStatus(s.serviceName, st)
	}
}
