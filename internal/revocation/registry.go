// Package revocation tracks session credentials invalidated before their
// natural expiry. Entries only need to outlive the token they refer to.
package revocation

import (
	"context"
	"time"
)

type Registry interface {
	// Revoke marks a token id as unusable. Idempotent.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
