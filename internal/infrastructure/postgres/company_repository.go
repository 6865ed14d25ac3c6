package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const selectCompany = `
	SELECT a.id, a.username, a.password, a.first_name, a.last_name, a.kind, a.registration_date,
	       c.name, c.greeting, c.farewell, c.birth_date, c.phone_number, c.country, c.city, c.plan_id
	FROM companies c JOIN accounts a ON a.id = c.id`

func scanCompany(row rowScanner) (*entity.Company, error) {
	var (
		c        entity.Company
		username *string
		password *string
		kind     string
	)
	err := row.Scan(
		&c.ID, &username, &password, &c.FirstName, &c.LastName, &kind, &c.RegisteredAt,
		&c.Name, &c.Greeting, &c.Farewell, &c.BirthDate, &c.PhoneNumber, &c.Country, &c.City, &c.PlanID,
	)
	if err != nil {
		return nil, err
	}
	c.Username = derefString(username)
	c.PasswordHash = derefString(password)
	c.Kind = entity.Kind(kind)
	return &c, nil
}

// Create persiste la cuenta base y la empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := insertAccount + `
		INSERT INTO companies (id, name, greeting, farewell, birth_date, phone_number, country, city, plan_id)
		SELECT id, $8, $9, $10, $11, $12, $13, $14, $15 FROM acc`
	args := append(accountArgs(company.Account),
		company.Name, company.Greeting, company.Farewell, company.BirthDate,
		company.PhoneNumber, company.Country, company.City, company.PlanID,
	)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return errDuplicate(err)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, selectCompany+` WHERE c.id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByIDs obtiene las empresas cuyos ids están en ids.
func (r *CompanyRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Company, error) {
	rows, err := r.q.Query(ctx, selectCompany+` WHERE c.id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// FindByName busca por nombre exacto sin distinguir mayúsculas; con nombres
// repetidos gana la más antigua.
func (r *CompanyRepo) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	query := selectCompany + ` WHERE lower(c.name) = lower($1) ORDER BY a.registration_date, a.id LIMIT 1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find company by name: %w", err)
	}
	return c, nil
}

// AssignPlan actualiza plan_id; false si la empresa no existe.
func (r *CompanyRepo) AssignPlan(ctx context.Context, companyID, planID string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE companies SET plan_id = $2 WHERE id = $1`, companyID, planID)
	if err != nil {
		return false, fmt.Errorf("assign plan: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
