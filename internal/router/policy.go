package router

import (
	"net/http"
	"strings"

	"pet-adoption-api/internal/middleware"
)

// defaultGated son las rutas que exigen sesión por defecto.
var defaultGated = map[string]bool{
	"POST /all-pets":       true,
	"POST /donations":      true,
	"POST /donations/{id}": true,
}

// alwaysOpen siguen abiertas aun con ProtectAllWrites.
var alwaysOpen = map[string]bool{
	"POST /jwt":    true,
	"POST /logout": true,
	"POST /users":  true,
}

// Policy decide qué rutas exigen sesión. Clave: "METHOD /pattern".
type Policy struct {
	ProtectAllWrites bool
}

func (p Policy) Gated(route string) bool {
	if defaultGated[route] {
		return true
	}
	if !p.ProtectAllWrites || alwaysOpen[route] {
		return false
	}
	method, _, _ := strings.Cut(route, " ")
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// Guard aplica gate a las rutas protegidas por la policy.
func (p Policy) Guard(gate func(http.Handler) http.Handler) middleware.Guard {
	return func(route string) func(http.Handler) http.Handler {
		if p.Gated(route) {
			return gate
		}
		return nil
	}
}
