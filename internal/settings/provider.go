package settings

import (
	"context"
	"errors"
)

// ErrOutsideProvider is returned when the store is read or written from a
// context that never had one attached.
var ErrOutsideProvider = errors.New("settings store used outside provider")

type contextKey string

const storeContextKey contextKey = "ragsettings/settings/store"

// WithStore returns a derived context that provides store to its consumers.
func WithStore(ctx context.Context, store *Store) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, storeContextKey, store)
}

// FromContext returns the store provided to ctx.
func FromContext(ctx context.Context) (*Store, error) {
	if ctx == nil {
		return nil, ErrOutsideProvider
	}
	store, ok := ctx.Value(storeContextKey).(*Store)
	if !ok || store == nil {
		return nil, ErrOutsideProvider
	}
	return store, nil
}
