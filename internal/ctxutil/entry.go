// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// EntryKey is the context key for the batch entry a request belongs to.
type EntryKey struct{}

// WithEntry returns a context tagged with a batch entry label.
func WithEntry(ctx context.Context, entry string) context.Context {
	return context.WithValue(ctx, EntryKey{}, entry)
}

// EntryFromContext returns the batch entry label, or empty string if not set.
func EntryFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(EntryKey{}).(string); ok {
		return v
	}
	return ""
}
