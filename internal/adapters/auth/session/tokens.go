// Package session emite y verifica los tokens HS256 que viajan en la cookie
// "token".
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pet-adoption-api/internal/ports/auth"
)

const (
	DefaultTTL = 5 * time.Hour

	minSecretLen = 32
)

type Config struct {
	Secret string
	TTL    time.Duration
}

type Option func(*Service)

// WithClock reemplaza time.Now al emitir y al chequear expiración.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRevoker activa la deny-list que consulta Verify y escribe Revoke.
func WithRevoker(r auth.Revoker) Option {
	return func(s *Service) {
		s.revoker = r
	}
}

// Service implementa auth.TokenIssuer y auth.AuthVerifier.
type Service struct {
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	revoker auth.Revoker
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func New(cfg Config, opts ...Option) (*Service, error) {
	if len(cfg.Secret) < minSecretLen {
		return nil, fmt.Errorf("session: secret must be at least %d characters", minSecretLen)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) Issue(_ context.Context, id auth.Identity) (auth.Token, error) {
	email := strings.TrimSpace(id.Email)
	if email == "" {
		return auth.Token{}, errors.New("session: email required")
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	jti := uuid.NewString()

	claims := tokenClaims{
		Email: email,
		Name:  strings.TrimSpace(id.Name),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return auth.Token{}, fmt.Errorf("session: sign token: %w", err)
	}
	return auth.Token{Value: signed, ID: jti, ExpiresAt: exp}, nil
}

// Verify devuelve auth.ErrInvalidToken ante cualquier falla, incluido un id
// revocado. Los errores de la deny-list se devuelven tal cual.
func (s *Service) Verify(ctx context.Context, token string) (auth.Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return auth.Claims{}, err
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return auth.Claims{}, fmt.Errorf("session: revocation lookup: %w", err)
		}
		if revoked {
			return auth.Claims{}, auth.ErrInvalidToken
		}
	}

	out := auth.Claims{
		Email:   claims.Email,
		Name:    claims.Name,
		TokenID: claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}

// Revoke bloquea token por el resto de su vida. Con token inválido o sin
// revoker no hace nada.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if s.revoker == nil {
		return nil
	}
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}

func (s *Service) parse(token string) (*tokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, auth.ErrInvalidToken
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("%w: email missing", auth.ErrInvalidToken)
	}
	return claims, nil
}
