package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo lee la tabla accounts, común a los tres tipos de cuenta.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador.
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// ExistsByUsername indica si algún tipo de cuenta ya usa username.
func (r *AccountRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists account: %w", err)
	}
	return exists, nil
}

// FindByUsername devuelve la cuenta o nil.
func (r *AccountRepo) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	query := `
		SELECT id, username, password, first_name, last_name, kind, registration_date
		FROM accounts WHERE username = $1`
	a, err := scanAccount(r.q.QueryRow(ctx, query, username))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*entity.Account, error) {
	var (
		a        entity.Account
		username *string
		password *string
		kind     string
	)
	if err := row.Scan(&a.ID, &username, &password, &a.FirstName, &a.LastName, &kind, &a.RegisteredAt); err != nil {
		return nil, err
	}
	a.Username = derefString(username)
	a.PasswordHash = derefString(password)
	a.Kind = entity.Kind(kind)
	return &a, nil
}

// insertAccount es el prefijo CTE que usan los Create de cada tipo de cuenta:
// la fila base y la extensión se escriben en una sola sentencia.
const insertAccount = `
	WITH acc AS (
		INSERT INTO accounts (id, username, password, first_name, last_name, kind, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	)`

func accountArgs(a entity.Account) []any {
	return []any{a.ID, nullIfEmpty(a.Username), nullIfEmpty(a.PasswordHash), a.FirstName, a.LastName, string(a.Kind), a.RegisteredAt}
}
