package revocation

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryTRL(t *testing.T) {
	ctx := context.Background()
	trl := NewInMemoryTRL()

	t.Run("unknown token is not revoked", func(t *testing.T) {
		revoked, err := trl.IsRevoked(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked {
			t.Fatal("expected token to not be revoked")
		}
	})

	t.Run("revoked token stays revoked until ttl", func(t *testing.T) {
		if err := trl.RevokeToken(ctx, "jti-1", time.Hour); err != nil {
			t.Fatalf("revoke: %v", err)
		}
		revoked, err := trl.IsRevoked(ctx, "jti-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !revoked {
			t.Fatal("expected token to be revoked")
		}
	})

	t.Run("expired entry reads as not revoked", func(t *testing.T) {
		if err := trl.RevokeToken(ctx, "jti-2", -time.Second); err != nil {
			t.Fatalf("revoke: %v", err)
		}
		revoked, err := trl.IsRevoked(ctx, "jti-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked {
			t.Fatal("expected expired entry to read as not revoked")
		}
	})

	t.Run("empty token id is a no-op", func(t *testing.T) {
		if err := trl.RevokeToken(ctx, "", time.Hour); err != nil {
			t.Fatalf("revoke: %v", err)
		}
		revoked, err := trl.IsRevoked(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if revoked {
			t.Fatal("expected empty id to never be revoked")
		}
	})
}
