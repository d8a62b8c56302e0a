package ai

import (
	"context"
)

// Provider is one remote chat-completion backend.
// Implementations return an error for any failure; callers decide how to degrade.
type Provider interface {
	// Name is a short label used in logs and metrics.
	Name() string

	// Reply sends message after the prior conversation turns and returns the reply text.
	Reply(ctx context.Context, message string, history []Message) (string, error)
}

// Responder answers a chat turn. It never fails: any internal error
// degrades to a deterministic local answer.
type Responder interface {
	GetReply(ctx context.Context, message string, history []Message) (reply string, tripGenerated bool)
}

// Gate decides whether remote providers may be used for the caller in ctx.
type Gate interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

type clientIDKey struct{}

// WithClientID attaches the caller identity used by a Gate.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

// ClientID returns the caller identity stored by WithClientID.
func ClientID(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}
