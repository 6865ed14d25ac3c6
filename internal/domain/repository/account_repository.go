package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// AccountRepository consulta la identidad base común a todos los tipos de cuenta.
// Es el único punto que ve el login de empresas, usuarios y managers a la vez.
type AccountRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// FindByUsername devuelve nil, nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
}
