package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/application/usecase"
	"github.com/jhoicas/directorio-api/internal/domain/policy"
	"github.com/jhoicas/directorio-api/internal/infrastructure/memory"
)

type env struct {
	companies *usecase.CompanyUseCase
	users     *usecase.UserUseCase
	managers  *usecase.ManagerUseCase
	store     *memory.Store
}

func newEnv() *env {
	store := memory.NewStore()
	repos := store.Repositories()
	return &env{
		companies: usecase.NewCompanyUseCase(repos, store),
		users:     usecase.NewUserUseCase(repos, store),
		managers:  usecase.NewManagerUseCase(repos, store),
		store:     store,
	}
}

func companyReq(username, name string) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Username:    username,
		Password:    "s3cret-pass",
		FirstName:   "Ana",
		LastName:    "Gómez",
		Name:        name,
		BirthDate:   "1985-03-14",
		PhoneNumber: "+57 3001234567",
		Country:     "Colombia",
		City:        "Medellín",
	}
}

func userReq(username, docType, docID string) dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Username:     username,
		Password:     "user-pass",
		FirstName:    "Luis",
		LastName:     "Pérez",
		BirthDate:    "1992-07-01",
		PhoneNumber:  "+57 3110000000",
		DocumentType: docType,
		DocumentID:   docID,
		Importance:   5,
		AllowCall:    true,
		AllowEmail:   true,
	}
}

func managerReq(username string) dto.CreateManagerRequest {
	return dto.CreateManagerRequest{Username: username, Password: "manager-pass", FirstName: "Marta", LastName: "Ruiz"}
}

func (e *env) mustCompany(t *testing.T, username, name string) *dto.CompanyResponse {
	t.Helper()
	c, err := e.companies.Register(context.Background(), companyReq(username, name))
	require.NoError(t, err)
	return c
}

// mustProvision vincula el documento a la empresa usando el token de la propia empresa.
func (e *env) mustProvision(t *testing.T, companyID, docType, docID string) *dto.MembershipResponse {
	t.Helper()
	m, err := e.users.Provision(context.Background(), companyClaim(companyID), dto.ProvisionMemberRequest{
		DocumentType: docType,
		DocumentID:   docID,
		FirstName:    "Luis",
		LastName:     "Pérez",
	})
	require.NoError(t, err)
	return m
}

func companyClaim(id string) *policy.Claim { return &policy.Claim{Subject: id, Role: policy.RoleCompany} }
func userClaim(id string) *policy.Claim    { return &policy.Claim{Subject: id, Role: policy.RoleUser} }
func managerClaim(id string) *policy.Claim { return &policy.Claim{Subject: id, Role: policy.RoleManager} }
