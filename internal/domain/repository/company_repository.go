package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get* devuelven nil, nil si no hay fila.
type CompanyRepository interface {
	// Create persiste la cuenta base y la empresa; domain.ErrDuplicate si el username ya existe.
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByIDs devuelve las empresas encontradas, sin orden garantizado.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Company, error)
	// FindByName busca por nombre sin distinguir mayúsculas.
	FindByName(ctx context.Context, name string) (*entity.Company, error)
	// AssignPlan devuelve false si la empresa no existe.
	AssignPlan(ctx context.Context, companyID, planID string) (bool, error)
}
