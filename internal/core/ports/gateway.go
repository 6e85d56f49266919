package ports

import (
	"context"
	"encoding/json"
)

// Gateway performs authenticated JSON requests against the backend and
// returns the payload of a successful envelope.
type Gateway interface {
	// Do sends body (nil for none) to path, relative to the API base URL.
	// Failures are returned as *apperrors.GatewayError.
	Do(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// CredentialSource is what the gateway needs from the session: the current
// bearer token and a way to drop it when the server rejects it.
type CredentialSource interface {
	Token() string
	Invalidate(ctx context.Context) error
}
