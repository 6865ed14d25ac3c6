package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/directorio-api/internal/application/auth"
	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/validation"
	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/policy"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// CompanyUseCase registro y consultas de empresas.
type CompanyUseCase struct {
	repos repository.Repositories
	tx    repository.TxRunner
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repos repository.Repositories, tx repository.TxRunner) *CompanyUseCase {
	return &CompanyUseCase{repos: repos, tx: tx}
}

func emailTaken() error { return domain.Duplicate("email already registered") }

// Register crea una empresa. El chequeo de login y el insert corren en la misma
// transacción; el índice único de accounts.username resuelve registros concurrentes.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = validation.NormalizeName(in.FirstName)
	in.LastName = validation.NormalizeName(in.LastName)
	in.Name = validation.NormalizeName(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	birth, err := validation.ParseDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	company := &entity.Company{
		Account: entity.Account{
			ID:           uuid.New().String(),
			Username:     in.Username,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Kind:         entity.KindCompany,
			RegisteredAt: now(),
		},
		Name:        in.Name,
		Greeting:    in.Greeting,
		Farewell:    in.Farewell,
		BirthDate:   birth,
		PhoneNumber: in.PhoneNumber,
		Country:     in.Country,
		City:        in.City,
	}

	err = uc.tx.Run(ctx, func(r repository.Repositories) error {
		exists, err := r.Accounts.ExistsByUsername(ctx, company.Username)
		if err != nil {
			return err
		}
		if exists {
			return emailTaken()
		}
		return r.Companies.Create(ctx, company)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, emailTaken()
	}
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID devuelve la empresa si el caller puede verla. La autorización
// se evalúa antes de consultar la existencia.
func (uc *CompanyUseCase) GetByID(ctx context.Context, claim *policy.Claim, id string) (*dto.CompanyResponse, error) {
	if err := policy.RequireRole(policy.OpViewCompany, claim); err != nil {
		return nil, err
	}
	id, err := canonicalID(id, "company")
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(policy.OpViewCompany, claim, policy.Target{ID: id}); err != nil {
		return nil, err
	}
	company, err := uc.repos.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	return entityToCompanyResponse(company), nil
}

// GetByIDs devuelve {id, name} en el mismo orden que ids. Los ids que no
// existen se omiten sin aviso; los repetidos se devuelven una sola vez.
func (uc *CompanyUseCase) GetByIDs(ctx context.Context, ids []string) ([]dto.CompanySummary, error) {
	if len(ids) == 0 {
		return nil, domain.InvalidInput("ids must not be empty")
	}
	ordered := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id, err := canonicalID(raw, "company")
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	found, err := uc.repos.Companies.GetByIDs(ctx, ordered)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.NotFound("no companies found")
	}
	byID := make(map[string]*entity.Company, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	out := make([]dto.CompanySummary, 0, len(found))
	for _, id := range ordered {
		if c, ok := byID[id]; ok {
			out = append(out, dto.CompanySummary{ID: c.ID, Name: c.Name})
		}
	}
	return out, nil
}

// AssignPlan asigna plan_id a la empresa del token. Una empresa inexistente
// es not-found aunque no sea la del token: la existencia se evalúa antes que la propiedad.
func (uc *CompanyUseCase) AssignPlan(ctx context.Context, claim *policy.Claim, in dto.AssignPlanRequest) (*dto.MessageResponse, error) {
	if err := policy.RequireRole(policy.OpAssignPlan, claim); err != nil {
		return nil, err
	}
	in.PlanID = strings.TrimSpace(in.PlanID)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	companyID, err := canonicalID(in.CompanyID, "company")
	if err != nil {
		return nil, err
	}
	company, err := uc.repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("company not found")
	}
	if err := policy.Authorize(policy.OpAssignPlan, claim, policy.Target{ID: companyID}); err != nil {
		return nil, err
	}
	ok, err := uc.repos.Companies.AssignPlan(ctx, companyID, in.PlanID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.NotFound("company not found")
	}
	return &dto.MessageResponse{Message: "plan assigned successfully"}, nil
}

// SearchByName busca una empresa por nombre sin distinguir mayúsculas.
func (uc *CompanyUseCase) SearchByName(ctx context.Context, name string) (*dto.CompanySummary, error) {
	name = validation.NormalizeName(name)
	if name == "" {
		return nil, domain.InvalidInput("name is required")
	}
	company, err := uc.repos.Companies.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound(fmt.Sprintf("company with name '%s' not found", name))
	}
	return &dto.CompanySummary{ID: company.ID, Name: company.Name}, nil
}
