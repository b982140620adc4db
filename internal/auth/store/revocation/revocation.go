// Package revocation implements the token revocation list. Logged-out tokens
// stay listed until their natural expiry, after which keeping them is
// pointless.
package revocation

import (
	"context"
	"time"
)

// TokenRevocationList records revoked token ids (jti) for the lifetime of the
// token.
type TokenRevocationList interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
