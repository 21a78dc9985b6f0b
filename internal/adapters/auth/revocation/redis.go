package revocation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const opTimeout = 3 * time.Second

// Redis guarda los ids revocados como keys que expiran junto con el token.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string) (*Redis, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("revocation: redis addr required")
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}, nil
}

func (r *Redis) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 || tokenID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocation: set: %w", err)
	}
	return nil
}

func (r *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	n, err := r.client.Exists(ctx, key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation: exists: %w", err)
	}
	return n > 0, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func key(tokenID string) string {
	return "revoked:" + tokenID
}
