package interceptors

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"workspace-hub/backend/internal/audit"
)

// AuditUnary returns a unary server interceptor that writes one access log line after each RPC.
// skipMethods is the set of full method names to not log (e.g. the health check).
func AuditUnary(skipMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if skipMethods[info.FullMethod] {
			return resp, err
		}
		userID, _ := GetUserID(ctx)
		if userID == "" {
			userID = "-"
		}
		ar := audit.ParseFullMethod(info.FullMethod)
		log.Printf("audit: action=%s resource=%s user=%s ip=%s code=%s duration=%s",
			ar.Action, ar.Resource, userID, ClientIP(ctx), status.Code(err), time.Since(start).Round(time.Millisecond))
		return resp, err
	}
}
