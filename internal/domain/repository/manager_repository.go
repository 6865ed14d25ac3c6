package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia para Manager.
type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.Manager) error
	GetByID(ctx context.Context, id string) (*entity.Manager, error)
}
