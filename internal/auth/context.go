package auth

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/pkg/middleware"
	"google.golang.org/grpc/metadata"
)

// GetActorID returns the opaque id of the calling user. The engine records
// it on movements and attributions but does not validate it.
func GetActorID(ctx context.Context) string {
	if val := middleware.Value(ctx, middleware.HeaderUserID); val != "" {
		return val
	}

	// Fallback to metadata
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(middleware.HeaderUserID); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// GetLanguage returns the caller's Accept-Language value, if any.
func GetLanguage(ctx context.Context) string {
	if val := middleware.Value(ctx, middleware.HeaderAcceptLanguage); val != "" {
		return val
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if val := md.Get(middleware.HeaderAcceptLanguage); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// ActorPtr returns nil for an anonymous caller.
func ActorPtr(actorID string) *string {
	if actorID == "" || actorID == "unknown" {
		return nil
	}
	return &actorID
}
