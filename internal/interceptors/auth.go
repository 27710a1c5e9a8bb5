package interceptors

import (
	"context"

	"github.com/umalmyha/clientes/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const accessTokenHeader = "accessToken"

// AuthUnaryInterceptor verifies that jwt is provided in metadata and valid
func AuthUnaryInterceptor(validator *auth.JwtValidator, applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		headers, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "no auth info provided")
		}

		tokenHdr := headers.Get(accessTokenHeader)
		if len(tokenHdr) == 0 {
			return nil, status.Error(codes.Unauthenticated, "accessToken header is missing")
		}

		claims, err := validator.Verify(tokenHdr[0])
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid access token provided - %v", err)
		}

		return h(auth.WithClaims(ctx, claims), req)
	}
}
