package users

import (
	"fmt"
	"time"

	"pet-adoption-api/internal/domain"
)

var (
	ErrNotFound     = fmt.Errorf("%w: user", domain.ErrNotFound)
	ErrEmailExists  = fmt.Errorf("%w: email already registered", domain.ErrConflict)
	ErrInvalidInput = domain.ErrInvalidInput
)

// Role da permisos en la app cliente. Los usuarios nuevos no tienen rol
// hasta que un admin lo asigna.
type Role string

const (
	RoleNone      Role = ""
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleNone, RoleUser, RoleAdmin, RoleVolunteer:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id" bson:"-"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	PhotoURL  string    `json:"photoUrl" bson:"photoUrl"`
	Role      Role      `json:"role" bson:"role"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Filter struct {
	Email string
}

// RolePatch es el único update que aceptan los usuarios.
type RolePatch struct {
	Role *Role `json:"role"`
}
