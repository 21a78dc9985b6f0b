package auth

import (
	"fmt"
	"time"

	"pet-adoption-api/internal/domain"
)

// ErrInvalidToken cubre cualquier falla de verificación (firma, formato,
// expiración o revocación).
var ErrInvalidToken = fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)

// Identity es lo que presenta el cliente para obtener sesión.
type Identity struct {
	Email string
	Name  string
}

// Claims es la identidad recuperada de un token verificado.
type Claims struct {
	Email     string
	Name      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token es una credencial de sesión recién emitida.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}
