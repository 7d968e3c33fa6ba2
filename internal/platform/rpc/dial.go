package rpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultCommandTimeout caps a single command call when the caller configures none.
const DefaultCommandTimeout = 5 * time.Second

// DefaultClientDialOptions returns the dial options every service client uses: plaintext
// transport, OTel client stats handler, and the JSON codec as default content-subtype.
func DefaultClientDialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}
}

// NewClient creates a client connection to addr. Extra options are appended after the defaults.
// The connection is lazy; the first call establishes it.
func NewClient(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if addr == "" {
		return nil, fmt.Errorf("rpc: address is required")
	}
	all := append(DefaultClientDialOptions(), opts...)
	conn, err := grpc.NewClient(addr, all...)
	if err != nil {
		return nil, fmt.Errorf("rpc: dial %s: %w", addr, err)
	}
	return conn, nil
}

// WithCallTimeout derives a context bounded by timeout (DefaultCommandTimeout when timeout <= 0).
func WithCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
