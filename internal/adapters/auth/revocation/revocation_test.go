package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, m.Revoke(ctx, "jti-2", 0))

	revoked, err := m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = m.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = m.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	r, err := NewRedis(mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Minute))
	assert.True(t, mr.Exists("revoked:jti-1"))

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = r.IsRevoked(ctx, "jti-unknown")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedis_RequiresAddr(t *testing.T) {
	r, err := NewRedis("", "")
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestRedis_LookupFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := NewRedis(mr.Addr(), "")
	require.NoError(t, err)
	mr.Close()

	_, err = r.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
