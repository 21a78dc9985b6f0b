package session

import (
	"context"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-api/internal/adapters/auth/revocation"
	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/ports/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newTestService(t *testing.T, c *clock, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithClock(c.Now)}, opts...)
	s, err := New(Config{Secret: testSecret}, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(Config{Secret: "short"})
	require.Error(t, err)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := newTestService(t, c)
	ctx := context.Background()

	tok, err := s.Issue(ctx, auth.Identity{Email: "a@x.com", Name: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, tok.ID)
	assert.Equal(t, c.t.Add(DefaultTTL), tok.ExpiresAt)

	claims, err := s.Verify(ctx, tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, tok.ID, claims.TokenID)
	assert.Equal(t, c.t, claims.IssuedAt)
	assert.Equal(t, tok.ExpiresAt, claims.ExpiresAt)
	assert.Equal(t, time.UTC, claims.IssuedAt.Location())
	assert.Equal(t, time.UTC, claims.ExpiresAt.Location())
}

func TestVerify_Expiry(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	c := &clock{t: start}
	s := newTestService(t, c)
	ctx := context.Background()

	tok, err := s.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	c.t = start.Add(DefaultTTL - time.Second)
	_, err = s.Verify(ctx, tok.Value)
	require.NoError(t, err)

	c.t = start.Add(DefaultTTL)
	_, err = s.Verify(ctx, tok.Value)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_Rejects(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := newTestService(t, c)
	ctx := context.Background()

	tok, err := s.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	other, err := New(Config{Secret: strings.Repeat("z", 32)}, WithClock(c.Now))
	require.NoError(t, err)
	foreign, err := other.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   c.t.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-jwt",
		"tampered":       tok.Value[:len(tok.Value)-2] + "xx",
		"foreign secret": foreign.Value,
		"alg none":       unsigned,
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Verify(ctx, value)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestRevoke(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := newTestService(t, c, WithRevoker(revocation.NewMemory()))
	ctx := context.Background()

	tok, err := s.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)
	keep, err := s.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, s.Revoke(ctx, tok.Value))

	_, err = s.Verify(ctx, tok.Value)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = s.Verify(ctx, keep.Value)
	assert.NoError(t, err)
}

func TestRevoke_NoRevokerIsNoop(t *testing.T) {
	c := &clock{t: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	s := newTestService(t, c)
	ctx := context.Background()

	tok, err := s.Issue(ctx, auth.Identity{Email: "a@x.com"})
	require.NoError(t, err)
	require.NoError(t, s.Revoke(ctx, tok.Value))

	_, err = s.Verify(ctx, tok.Value)
	assert.NoError(t, err)
}
