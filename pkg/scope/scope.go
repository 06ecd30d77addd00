package scope

import (
	"context"

	"engagement-srv/internal/model"
)

// Payload is the set of claims carried by a verified token.
type Payload struct {
	UserID      string
	Subject     string
	Username    string
	Role        string
	WorkspaceID string
	Issuer      string
	Id          string
	IssuedAt    int64
	ExpiresAt   int64
}

// Manager verifies tokens into payloads. pkg/jwt.Manager implements it.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:      userID,
		Username:    payload.Username,
		Role:        payload.Role,
		WorkspaceID: payload.WorkspaceID,
	}
}

type contextKey string

const (
	payloadContextKey contextKey = "scope-payload"
	scopeContextKey   contextKey = "scope"
)

// SetPayloadToContext stores the token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey, payload)
}

// GetPayloadFromContext returns the token payload stored in the context.
func GetPayloadFromContext(ctx context.Context) Payload {
	payload, ok := ctx.Value(payloadContextKey).(Payload)
	if !ok {
		return Payload{}
	}
	return payload
}

// SetScopeToContext stores the request scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey, sc)
}

// GetScopeFromContext returns the request scope stored in the context.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeContextKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
