package session

import (
	"context"
	"errors"
)

var ErrNoActiveSession = errors.New("session state read outside an active session")

type contextKey struct{}

func WithState(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session state. Calling it on a context
// without one is a wiring bug and panics with ErrNoActiveSession.
func FromContext(ctx context.Context) *State {
	s, ok := ctx.Value(contextKey{}).(*State)
	if !ok || s == nil {
		panic(ErrNoActiveSession)
	}
	return s
}
