package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain"
	"pet-adoption-api/internal/domain/users"
)

type UsersRepo struct {
	t table
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{t: table{db: db, name: "users", orderBy: "created_at ASC"}}
}

// Create también se apoya en el índice único de email: un registro que gana
// la carrera al chequeo del service igual falla con ErrEmailExists.
func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	u.ID = ""
	id, err := insert(ctx, r.t, u)
	if isUniqueViolation(err) {
		return users.User{}, users.ErrEmailExists
	}
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	u, err := get[users.User](ctx, r.t, id, users.ErrNotFound)
	if err != nil {
		return users.User{}, err
	}
	u.ID = id
	return u, nil
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (users.User, error) {
	row, err := findBy[users.User](ctx, r.t, "email", email, users.ErrNotFound)
	if err != nil {
		return users.User{}, err
	}
	row.Doc.ID = row.ID
	return row.Doc, nil
}

func (r *UsersRepo) List(ctx context.Context, f users.Filter) ([]users.User, error) {
	rows, err := list[users.User](ctx, r.t, "email", f.Email)
	if err != nil {
		return nil, err
	}
	out := make([]users.User, 0, len(rows))
	for _, row := range rows {
		row.Doc.ID = row.ID
		out = append(out, row.Doc)
	}
	return out, nil
}

func (r *UsersRepo) UpdateRole(ctx context.Context, id string, role users.Role) (domain.WriteResult, error) {
	_, res, err := update(ctx, r.t, id, users.ErrNotFound, func(cur users.User) (users.User, error) {
		cur.Role = role
		return cur, nil
	})
	return res, err
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	return remove(ctx, r.t, id, users.ErrNotFound)
}
