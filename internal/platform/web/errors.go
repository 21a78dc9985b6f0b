package web

import (
	"errors"
	"net/http"

	"pet-adoption-api/internal/domain"
)

// Kinds de error que ven los clientes en el envelope.
const (
	KindInvalidInput    = "invalid_input"
	KindNotAuthorized   = "not_authorized"
	KindUnauthorized    = "unauthorized"
	KindNotFound        = "not_found"
	KindConflict        = "conflict"
	KindUpstreamFailure = "upstream_failure"
	KindInternal        = "internal"
)

// Classify mapea err a un kind y un status HTTP. Todo lo que no esté en la
// taxonomía del dominio es internal.
func Classify(err error) (kind string, status int) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return KindInvalidInput, http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthorized):
		return KindNotAuthorized, http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorized):
		return KindUnauthorized, http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return KindNotFound, http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return KindConflict, http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return KindUpstreamFailure, http.StatusInternalServerError
	default:
		return KindInternal, http.StatusInternalServerError
	}
}
