package repository

import (
	"context"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
)

// MembershipRepository es el libro de vínculos empresa-usuario por documento.
type MembershipRepository interface {
	// Link inserta el vínculo; repetirlo no duplica filas.
	Link(ctx context.Context, m *entity.Membership) error
	// FindByDocument devuelve el primer vínculo con ese documento o nil.
	FindByDocument(ctx context.Context, doc entity.Document) (*entity.Membership, error)
	// CompaniesFor devuelve las empresas del usuario en orden de vinculación.
	// Un usuario sin vínculos produce una lista vacía, no un error.
	CompaniesFor(ctx context.Context, userID string) ([]*entity.Company, error)
	IsMember(ctx context.Context, companyID, userID string) (bool, error)
}
