package session

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("no session store in context")

type contextKey struct{}

func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the store attached by WithStore. Reaching
// for the session outside of the guarded handlers is a programming
// error, callers should treat ErrNoSession as fatal.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNoSession
	}
	return s, nil
}
