package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"pet-adoption-api/internal/domain"
)

const uniqueViolationCode = "23505"

// table es una tabla de documentos: (id uuid, doc jsonb, created_at). name y
// orderBy son constantes, nunca input del usuario.
type table struct {
	db      *sql.DB
	name    string
	orderBy string
}

type row[T any] struct {
	ID  string
	Doc T
}

// validID indica si id puede existir; todo lo que no sea UUID es notFound.
func validID(id string, notFound error) error {
	if _, err := uuid.Parse(id); err != nil {
		return notFound
	}
	return nil
}

func insert[T any](ctx context.Context, t table, v T) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("postgres: encode %s: %w", t.name, err)
	}
	var id string
	err = t.db.QueryRowContext(ctx,
		`INSERT INTO `+t.name+` (doc) VALUES ($1) RETURNING id::text`, raw,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func get[T any](ctx context.Context, t table, id string, notFound error) (T, error) {
	var zero T
	if err := validID(id, notFound); err != nil {
		return zero, err
	}

	var raw []byte
	err := t.db.QueryRowContext(ctx, `SELECT doc FROM `+t.name+` WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, notFound
	}
	if err != nil {
		return zero, err
	}
	return decode[T](t, raw)
}

// findBy devuelve la primera fila cuyo campo del doc es igual a value.
func findBy[T any](ctx context.Context, t table, field, value string, notFound error) (row[T], error) {
	var (
		id  string
		raw []byte
	)
	err := t.db.QueryRowContext(ctx,
		`SELECT id::text, doc FROM `+t.name+` WHERE doc->>$1 = $2 LIMIT 1`, field, value,
	).Scan(&id, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return row[T]{}, notFound
	}
	if err != nil {
		return row[T]{}, err
	}
	doc, err := decode[T](t, raw)
	if err != nil {
		return row[T]{}, err
	}
	return row[T]{ID: id, Doc: doc}, nil
}

// list devuelve todas las filas, o las que coinciden con los filtros.
// filters alterna nombre de campo y valor; los valores vacíos se saltean.
func list[T any](ctx context.Context, t table, filters ...string) ([]row[T], error) {
	q := `SELECT id::text, doc FROM ` + t.name
	var args []any
	for i := 0; i+1 < len(filters); i += 2 {
		if filters[i+1] == "" {
			continue
		}
		if len(args) == 0 {
			q += ` WHERE `
		} else {
			q += ` AND `
		}
		q += fmt.Sprintf(`doc->>$%d = $%d`, len(args)+1, len(args)+2)
		args = append(args, filters[i], filters[i+1])
	}
	q += ` ORDER BY ` + t.orderBy

	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]row[T], 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		doc, err := decode[T](t, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, row[T]{ID: id, Doc: doc})
	}
	return out, rows.Err()
}

// update bloquea la fila, aplica fn y escribe si hubo cambios. Si la fila
// no existe se reporta como escritura sin match, no como error.
func update[T any](ctx context.Context, t table, id string, notFound error, fn func(cur T) (T, error)) (T, domain.WriteResult, error) {
	var zero T
	if err := validID(id, notFound); err != nil {
		return zero, domain.WriteResult{}, err
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, domain.WriteResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var raw []byte
	err = tx.QueryRowContext(ctx, `SELECT doc FROM `+t.name+` WHERE id = $1 FOR UPDATE`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, domain.WriteResult{}, nil
	}
	if err != nil {
		return zero, domain.WriteResult{}, err
	}

	cur, err := decode[T](t, raw)
	if err != nil {
		return zero, domain.WriteResult{}, err
	}
	next, err := fn(cur)
	if err != nil {
		return zero, domain.WriteResult{}, err
	}
	if reflect.DeepEqual(cur, next) {
		return next, domain.WriteResult{Matched: true}, tx.Commit()
	}

	encoded, err := json.Marshal(next)
	if err != nil {
		return zero, domain.WriteResult{}, fmt.Errorf("postgres: encode %s: %w", t.name, err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE `+t.name+` SET doc = $2 WHERE id = $1`, id, encoded); err != nil {
		return zero, domain.WriteResult{}, err
	}
	if err := tx.Commit(); err != nil {
		return zero, domain.WriteResult{}, err
	}
	return next, domain.WriteResult{Matched: true, Modified: true}, nil
}

func remove(ctx context.Context, t table, id string, notFound error) error {
	if err := validID(id, notFound); err != nil {
		return err
	}
	res, err := t.db.ExecContext(ctx, `DELETE FROM `+t.name+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return notFound
	}
	return nil
}

func decode[T any](t table, raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("postgres: decode %s: %w", t.name, err)
	}
	return v, nil
}

// isUniqueViolation detecta un conflicto de índice único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
