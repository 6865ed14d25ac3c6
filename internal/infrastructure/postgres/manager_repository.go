package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

// ManagerRepo implementación del puerto ManagerRepository sobre PostgreSQL.
type ManagerRepo struct {
	q Querier
}

// NewManagerRepository construye el adaptador.
func NewManagerRepository(q Querier) *ManagerRepo {
	return &ManagerRepo{q: q}
}

// Create persiste la cuenta base y la fila de managers.
func (r *ManagerRepo) Create(ctx context.Context, manager *entity.Manager) error {
	query := insertAccount + ` INSERT INTO managers (id) SELECT id FROM acc`
	if _, err := r.q.Exec(ctx, query, accountArgs(manager.Account)...); err != nil {
		if isUniqueViolation(err) {
			return errDuplicate(err)
		}
		return fmt.Errorf("insert manager: %w", err)
	}
	return nil
}

// GetByID obtiene un manager por ID.
func (r *ManagerRepo) GetByID(ctx context.Context, id string) (*entity.Manager, error) {
	query := `
		SELECT a.id, a.username, a.password, a.first_name, a.last_name, a.kind, a.registration_date
		FROM managers m JOIN accounts a ON a.id = m.id
		WHERE m.id = $1`
	a, err := scanAccount(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return &entity.Manager{Account: *a}, nil
}
