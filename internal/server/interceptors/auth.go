package interceptors

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/security"
)

const bearerPrefix = "bearer "

// TokenValidator resolves an access token to the caller it was issued for.
type TokenValidator interface {
	ValidateAccess(token string) (userID, email string, err error)
}

var _ TokenValidator = (*security.TokenProvider)(nil)

func unauthenticated() error {
	return apperrors.New(apperrors.CodeUnauthenticated, "missing or invalid authorization").ToGRPCStatus()
}

// AuthUnary returns a unary server interceptor that resolves the Bearer access token in the
// authorization metadata to the caller and stores it in context. Methods in publicMethods run
// without a token; a valid token on them still sets the caller, an invalid one is ignored.
func AuthUnary(tokens TokenValidator, publicMethods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		public := publicMethods[info.FullMethod]
		token := extractBearer(ctx)
		if token == "" {
			if public {
				return handler(ctx, req)
			}
			return nil, unauthenticated()
		}
		userID, email, err := tokens.ValidateAccess(token)
		switch {
		case err == nil:
			return handler(WithCaller(ctx, userID, email), req)
		case public:
			return handler(ctx, req)
		}
		return nil, unauthenticated()
	}
}

// extractBearer returns the Bearer token from ctx metadata, or "" if missing or malformed.
func extractBearer(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	v := strings.TrimSpace(vals[0])
	if len(v) < len(bearerPrefix) || !strings.EqualFold(v[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(v[len(bearerPrefix):])
}
