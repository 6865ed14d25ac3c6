package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo libro company_user. Solo inserta: los vínculos no se borran.
type MembershipRepo struct {
	q Querier
}

// NewMembershipRepository construye el adaptador.
func NewMembershipRepository(q Querier) *MembershipRepo {
	return &MembershipRepo{q: q}
}

// Link inserta el vínculo; si ya existe conserva el created_at original.
func (r *MembershipRepo) Link(ctx context.Context, m *entity.Membership) error {
	query := `
		WITH ins AS (
			INSERT INTO company_user (company_id, user_id, document_type, document_id, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (company_id, user_id, document_type, document_id) DO NOTHING
			RETURNING created_at
		)
		SELECT created_at FROM ins
		UNION ALL
		SELECT created_at FROM company_user
		WHERE company_id = $1 AND user_id = $2 AND document_type = $3 AND document_id = $4
		LIMIT 1`
	err := r.q.QueryRow(ctx, query, m.CompanyID, m.UserID, m.Document.Type, m.Document.ID, m.CreatedAt).
		Scan(&m.CreatedAt)
	if isNoRows(err) {
		// otra transacción insertó el mismo vínculo mientras esperábamos
		return nil
	}
	if err != nil {
		return fmt.Errorf("link membership: %w", err)
	}
	return nil
}

// FindByDocument devuelve el vínculo más antiguo con ese documento.
func (r *MembershipRepo) FindByDocument(ctx context.Context, doc entity.Document) (*entity.Membership, error) {
	query := `
		SELECT company_id, user_id, document_type, document_id, created_at
		FROM company_user
		WHERE document_type = $1 AND document_id = $2
		ORDER BY seq LIMIT 1`
	var m entity.Membership
	err := r.q.QueryRow(ctx, query, doc.Type, doc.ID).
		Scan(&m.CompanyID, &m.UserID, &m.Document.Type, &m.Document.ID, &m.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find membership: %w", err)
	}
	return &m, nil
}

// CompaniesFor devuelve las empresas del usuario en orden de vinculación, sin repetir.
func (r *MembershipRepo) CompaniesFor(ctx context.Context, userID string) ([]*entity.Company, error) {
	query := `
		SELECT a.id, a.username, a.password, a.first_name, a.last_name, a.kind, a.registration_date,
		       c.name, c.greeting, c.farewell, c.birth_date, c.phone_number, c.country, c.city, c.plan_id
		FROM (
			SELECT company_id, min(seq) AS first_seq
			FROM company_user WHERE user_id = $1
			GROUP BY company_id
		) cu
		JOIN companies c ON c.id = cu.company_id
		JOIN accounts a ON a.id = c.id
		ORDER BY cu.first_seq`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("companies for user: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// IsMember indica si existe algún vínculo entre la empresa y el usuario.
func (r *MembershipRepo) IsMember(ctx context.Context, companyID, userID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM company_user WHERE company_id = $1 AND user_id = $2)`,
		companyID, userID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("is member: %w", err)
	}
	return ok, nil
}
