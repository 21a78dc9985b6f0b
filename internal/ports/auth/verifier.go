package auth

import (
	"context"
	"time"
)

// AuthVerifier verifica un token y devuelve sus claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

type TokenIssuer interface {
	Issue(ctx context.Context, id Identity) (Token, error)
}

// Revoker es una deny-list opcional por id de token.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
