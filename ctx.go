package staff

import (
	"context"

	"github.com/google/uuid"
)

// ActorRef identifies the principal performing a mutating action. The
// surrounding transport layer resolves it from the authenticated session,
// never from request body fields.
type ActorRef struct {
	ID   uuid.UUID
	Type string
}

var actorCtxKey = &contextKey{"actor"}

type contextKey struct {
	name string
}

// WithActor sets the acting principal in the given context
func WithActor(ctx context.Context, actor ActorRef) context.Context {
	return context.WithValue(ctx, actorCtxKey, actor)
}

// ActorFromContext finds the acting principal from the context.
func ActorFromContext(ctx context.Context) (ActorRef, bool) {
	raw, ok := ctx.Value(actorCtxKey).(ActorRef)
	return raw, ok
}

// requireActor returns the acting principal or ErrMissingActor. Mutating
// handlers refuse to stamp a zero actor.
func requireActor(ctx context.Context) (ActorRef, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.ID == uuid.Nil {
		return ActorRef{}, ErrMissingActor
	}
	return actor, nil
}
