package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	HeaderUserID         = "x-user-id"
	HeaderRequestID      = "x-request-id"
	HeaderAcceptLanguage = "accept-language"
)

var propagated = []string{HeaderUserID, HeaderRequestID, HeaderAcceptLanguage}

type ctxKey string

// WithValue stores a propagated request header in ctx.
func WithValue(ctx context.Context, header, value string) context.Context {
	return context.WithValue(ctx, ctxKey(header), value)
}

// Value returns a propagated request header, or "" when absent.
func Value(ctx context.Context, header string) string {
	v, _ := ctx.Value(ctxKey(header)).(string)
	return v
}

// ContextInterceptor copies caller headers from gRPC metadata into the
// context and assigns a request id when the caller sent none.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			for _, h := range propagated {
				if vals := md.Get(h); len(vals) > 0 && vals[0] != "" {
					ctx = WithValue(ctx, h, vals[0])
				}
			}
		}
		if Value(ctx, HeaderRequestID) == "" {
			ctx = WithValue(ctx, HeaderRequestID, uuid.NewString())
		}
		return handler(ctx, req)
	}
}

func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		log.Info("grpc request completed",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.String("request_id", Value(ctx, HeaderRequestID)),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
