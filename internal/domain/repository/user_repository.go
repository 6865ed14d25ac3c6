package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste un usuario pre-registrado (sin login).
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByDocument(ctx context.Context, doc entity.Document) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update sobrescribe los campos mutables; domain.ErrDuplicate si el username choca,
	// domain.ErrNotFound si el usuario no existe.
	Update(ctx context.Context, user *entity.User) error
}
