package usecase

import (
	"context"
	"errors"
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

// UserUseCase registro de personas, consultas y libro de vínculos con empresas.
type UserUseCase struct {
	repos repository.Repositories
	tx    repository.TxRunner
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repos repository.Repositories, tx repository.TxRunner) *UserUseCase {
	return &UserUseCase{repos: repos, tx: tx}
}

// Register completa el registro de una persona pre-registrada por una empresa.
//
// Es un upsert solo-actualización por documento:
//   - sin Membership para el documento -> ErrNoMembership (antes de validar campos)
//   - login usado por otra cuenta      -> ErrDuplicate
//   - sin User con ese documento       -> ErrNotFound
//   - en otro caso se sobrescriben los campos mutables del User existente.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	doc := toDocument(in.DocumentType, in.DocumentID)
	in.DocumentType, in.DocumentID = doc.Type, doc.ID

	// Los vínculos nunca se borran, así que este chequeo no necesita la transacción.
	m, err := uc.repos.Memberships.FindByDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NoMembership()
	}

	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = validation.NormalizeName(in.FirstName)
	in.LastName = validation.NormalizeName(in.LastName)
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

	var updated *entity.User
	err = uc.tx.Run(ctx, func(r repository.Repositories) error {
		existing, err := r.Users.GetByDocument(ctx, doc)
		if err != nil {
			return err
		}
		holder, err := r.Accounts.FindByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if holder != nil && (existing == nil || holder.ID != existing.ID) {
			return emailTaken()
		}
		if existing == nil {
			return domain.NotFound("user to update not found")
		}

		existing.Username = in.Username
		existing.PasswordHash = hash
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		existing.BirthDate = &birth
		existing.PhoneNumber = in.PhoneNumber
		existing.Importance = in.Importance
		existing.AllowCall = in.AllowCall
		existing.AllowSMS = in.AllowSMS
		existing.AllowEmail = in.AllowEmail
		if err := r.Users.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, emailTaken()
	}
	if err != nil {
		return nil, err
	}
	return entityToUserResponse(updated), nil
}

// GetByID devuelve el usuario. Una empresa solo ve a sus miembros; el rol se
// valida antes de buscar y el vínculo después de confirmar que el usuario existe.
func (uc *UserUseCase) GetByID(ctx context.Context, claim *policy.Claim, id string) (*dto.UserResponse, error) {
	if err := policy.RequireRole(policy.OpViewUser, claim); err != nil {
		return nil, err
	}
	id, err := canonicalID(id, "user")
	if err != nil {
		return nil, err
	}
	user, err := uc.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}

	target := policy.Target{ID: id}
	if claim.Role == policy.RoleCompany && isUUID(claim.Subject) {
		target.IsMember, err = uc.repos.Memberships.IsMember(ctx, claim.Subject, id)
		if err != nil {
			return nil, err
		}
	}
	if err := policy.Authorize(policy.OpViewUser, claim, target); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// CompaniesByDocument lista las empresas del usuario identificado por documento.
func (uc *UserUseCase) CompaniesByDocument(ctx context.Context, claim *policy.Claim, in dto.UserDocumentRequest) (*dto.UserCompaniesResponse, error) {
	if err := policy.RequireRole(policy.OpUserCompanies, claim); err != nil {
		return nil, err
	}
	doc := toDocument(in.DocumentType, in.DocumentID)
	in.DocumentType, in.DocumentID = doc.Type, doc.ID
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.repos.Users.GetByDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	return uc.companiesOf(ctx, claim, user)
}

// CompaniesByUserID lista las empresas del usuario identificado por id.
func (uc *UserUseCase) CompaniesByUserID(ctx context.Context, claim *policy.Claim, in dto.UserIDRequest) (*dto.UserCompaniesResponse, error) {
	if err := policy.RequireRole(policy.OpUserCompanies, claim); err != nil {
		return nil, err
	}
	in.ID = strings.TrimSpace(in.ID)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	id, err := canonicalID(in.ID, "user")
	if err != nil {
		return nil, err
	}
	user, err := uc.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.companiesOf(ctx, claim, user)
}

func (uc *UserUseCase) companiesOf(ctx context.Context, claim *policy.Claim, user *entity.User) (*dto.UserCompaniesResponse, error) {
	if user == nil {
		return nil, domain.NotFound("user not found")
	}
	if err := policy.Authorize(policy.OpUserCompanies, claim, policy.Target{ID: user.ID}); err != nil {
		return nil, err
	}
	companies, err := uc.repos.Memberships.CompaniesFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.UserCompaniesResponse{
		UserID:    user.ID,
		Companies: make([]dto.CompanyResponse, 0, len(companies)),
	}
	for _, c := range companies {
		out.Companies = append(out.Companies, *entityToCompanyResponse(c))
	}
	return out, nil
}

// Provision pre-registra a una persona en una empresa: reutiliza el User con
// ese documento o crea uno sin login, y lo vincula. Es el paso previo que
// habilita Register.
func (uc *UserUseCase) Provision(ctx context.Context, claim *policy.Claim, in dto.ProvisionMemberRequest) (*dto.MembershipResponse, error) {
	if err := policy.RequireRole(policy.OpProvisionMember, claim); err != nil {
		return nil, err
	}
	doc := toDocument(in.DocumentType, in.DocumentID)
	in.DocumentType, in.DocumentID = doc.Type, doc.ID
	in.CompanyID = strings.TrimSpace(in.CompanyID)
	in.FirstName = validation.NormalizeName(in.FirstName)
	in.LastName = validation.NormalizeName(in.LastName)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.CompanyID == "" {
		if claim.Role != policy.RoleCompany {
			return nil, domain.InvalidInput("company_id is required")
		}
		in.CompanyID = claim.Subject
	}
	companyID, err := canonicalID(in.CompanyID, "company")
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(policy.OpProvisionMember, claim, policy.Target{ID: companyID}); err != nil {
		return nil, err
	}

	var link *entity.Membership
	err = uc.tx.Run(ctx, func(r repository.Repositories) error {
		company, err := r.Companies.GetByID(ctx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.NotFound("company not found")
		}
		user, err := r.Users.GetByDocument(ctx, doc)
		if err != nil {
			return err
		}
		if user == nil {
			user = &entity.User{
				Account: entity.Account{
					ID:           uuid.New().String(),
					FirstName:    in.FirstName,
					LastName:     in.LastName,
					Kind:         entity.KindUser,
					RegisteredAt: now(),
				},
				Document:   doc,
				Importance: entity.MinImportance,
			}
			if err := r.Users.Create(ctx, user); err != nil {
				return err
			}
		}
		link = &entity.Membership{
			CompanyID: companyID,
			UserID:    user.ID,
			Document:  doc,
			CreatedAt: now(),
		}
		return r.Memberships.Link(ctx, link)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, domain.Duplicate("document is being provisioned concurrently, retry")
	}
	if err != nil {
		return nil, err
	}
	return entityToMembershipResponse(link), nil
}

// ValidateEmail confirma que el login email pertenece a un usuario vinculado a companyID.
func (uc *UserUseCase) ValidateEmail(ctx context.Context, email, companyID string) (*dto.UserValidationResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.InvalidInput("email is required")
	}
	companyID, err := canonicalID(companyID, "company")
	if err != nil {
		return nil, err
	}
	user, err := uc.repos.Users.GetByUsername(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("user not found")
	}
	member, err := uc.repos.Memberships.IsMember(ctx, companyID, user.ID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, domain.NotFound("user does not belong to this company")
	}
	company, err := uc.repos.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("user does not belong to this company")
	}
	return &dto.UserValidationResponse{
		ID:          user.ID,
		Email:       user.Username,
		CompanyID:   company.ID,
		CompanyName: company.Name,
	}, nil
}
