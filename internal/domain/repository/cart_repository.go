package repository

import "context"

// CartRepository stores the serialized cart snapshot per session, the
// server-side analog of the browser's local storage. Load returns nil
// bytes (no error) when no snapshot exists.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, snapshot []byte) error
	Delete(ctx context.Context, sessionID string) error
}
