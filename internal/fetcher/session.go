package fetcher

import "context"

type sessionKey struct{}

// WithSession tags ctx with the page session that triggered a fetch, so
// recorded attempts can be attributed to it.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFrom returns the session id stored by WithSession, or "".
func SessionFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
