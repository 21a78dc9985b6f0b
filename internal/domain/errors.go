// Package domain tiene la taxonomía de errores y los resultados de escritura
// comunes a todos los recursos.
package domain

import "errors"

// Errores base. Cada recurso los envuelve para que la capa HTTP clasifique
// con errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotAuthorized = errors.New("not authorized")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUpstream      = errors.New("upstream failure")
)

// WriteResult indica qué hizo una escritura de campos.
type WriteResult struct {
	Matched  bool `json:"matched"`
	Modified bool `json:"modified"`
}
