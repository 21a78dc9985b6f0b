// Package sessions sirve login (/jwt) y logout (/logout). El token de sesión
// va en una cookie HttpOnly.
package sessions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption-api/internal/middleware"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/web"
	"pet-adoption-api/internal/ports/auth"
)

// Revoker invalida un token. Los tokens inválidos se ignoran.
type Revoker interface {
	Revoke(ctx context.Context, token string) error
}

type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// ParseSameSite mapea "lax", "strict" y "none"; cualquier otro valor => Lax.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}

func RegisterRoutes(r chi.Router, issuer auth.TokenIssuer, revoker Revoker, cookie CookieConfig) {
	if cookie.Name == "" {
		cookie.Name = middleware.DefaultCookieName
	}
	r.Post("/jwt", issueHandler(issuer, cookie))
	r.Post("/logout", logoutHandler(revoker, cookie))
}

type issueRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type issueResponse struct {
	Success   bool      `json:"success"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type logoutResponse struct {
	Success bool `json:"success"`
}

// issueHandler godoc
// @Summary  Start a session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    identity  body      issueRequest  true  "Identity"
// @Success  200       {object}  issueResponse
// @Router   /jwt [post]
func issueHandler(issuer auth.TokenIssuer, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req issueRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, r, err)
			return
		}

		tok, err := issuer.Issue(r.Context(), auth.Identity{Email: req.Email, Name: req.Name})
		if err != nil {
			web.WriteError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    tok.Value,
			Path:     "/",
			Expires:  tok.ExpiresAt,
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: cookie.SameSite,
		})
		web.WriteJSON(w, http.StatusOK, issueResponse{Success: true, ExpiresAt: tok.ExpiresAt})
	}
}

// logoutHandler godoc
// @Summary  End a session
// @Tags     sessions
// @Produce  json
// @Success  200  {object}  logoutResponse
// @Router   /logout [post]
func logoutHandler(revoker Revoker, cookie CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := middleware.TokenFromRequest(r, cookie.Name); token != "" && revoker != nil {
			if err := revoker.Revoke(r.Context(), token); err != nil {
				logger.FromContext(r.Context()).Warn("token revocation failed", "error", err)
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookie.Name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cookie.Secure,
			SameSite: cookie.SameSite,
		})
		web.WriteJSON(w, http.StatusOK, logoutResponse{Success: true})
	}
}
