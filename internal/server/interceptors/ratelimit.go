package interceptors

import (
	"context"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/ratelimit"
)

// RateLimit bounds calls per client IP and method.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

// RateLimitUnary returns a unary server interceptor that rejects calls to the listed methods once
// a client IP exceeds the method's limit in the current window. Other methods pass through.
// The rejection carries RATE_LIMITED and a retry-after-seconds trailer.
func RateLimitUnary(limiter ratelimit.Limiter, methods map[string]RateLimit) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		rl, ok := methods[info.FullMethod]
		if !ok || limiter == nil {
			return handler(ctx, req)
		}
		d := limiter.Allow(ctx, info.FullMethod+"|"+ClientIP(ctx), rl.Limit, rl.Window)
		if d.Allowed {
			return handler(ctx, req)
		}
		retry := time.Until(d.WindowEnd)
		if retry < time.Second {
			retry = time.Second
		}
		_ = grpc.SetTrailer(ctx, metadata.Pairs("retry-after-seconds", strconv.Itoa(int(retry.Seconds()))))
		return nil, apperrors.New(apperrors.CodeRateLimited, "too many requests, try again later").ToGRPCStatus()
	}
}
