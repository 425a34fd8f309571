package usecase

import (
	"context"
	"strings"
)

type actorKey struct{}

// ContextWithActor records who is performing the request, for audit stamps.
func ContextWithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, strings.TrimSpace(actor))
}

// ActorFromContext returns the actor set by ContextWithActor, or "" when anonymous.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}
