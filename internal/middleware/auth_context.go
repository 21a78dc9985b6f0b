package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/web"
	"pet-adoption-api/internal/ports/auth"
)

// DefaultCookieName es la cookie que lleva el token de sesión.
const DefaultCookieName = "token"

type ctxKey string

const claimsKey ctxKey = "claims"

// RequireSession:
// - Busca el token en la cookie y después en Authorization: Bearer.
// - Sin token => not_authorized. Token inválido => unauthorized.
// - En esos casos no se llama a next.
func RequireSession(verifier auth.AuthVerifier, cookieName string) func(http.Handler) http.Handler {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cookieName)
			if token == "" {
				web.WriteError(w, r, fmt.Errorf("%w: session token required", domain.ErrNotAuthorized))
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				web.WriteError(w, r, err)
				return
			}

			ctx := WithClaims(r.Context(), claims)
			ctx = logger.WithContext(ctx, logger.FromContext(ctx).With("user", claims.Email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest devuelve el token de sesión o "".
func TokenFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil {
		if v := strings.TrimSpace(c.Value); v != "" {
			return v
		}
	}
	return bearerToken(r.Header.Get("Authorization"))
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Guard devuelve el middleware de una ruta, con clave "METHOD /pattern".
// Guard nil o resultado nil => ruta abierta.
type Guard func(route string) func(http.Handler) http.Handler

// For devuelve la cadena de middleware de route; vacía si la ruta es abierta.
func (g Guard) For(route string) []func(http.Handler) http.Handler {
	if g == nil {
		return nil
	}
	if mw := g(route); mw != nil {
		return []func(http.Handler) http.Handler{mw}
	}
	return nil
}
