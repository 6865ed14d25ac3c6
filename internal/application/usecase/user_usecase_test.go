package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain"
)

func TestUserRegister_SinVinculoEsNoMembership(t *testing.T) {
	e := newEnv()
	_, err := e.users.Register(context.Background(), userReq("u@x.com", "passport", "Z1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoMembership)
	assert.Equal(t, "the given user does not belong to any registered company", err.Error())
}

// El gate de vínculo se evalúa antes que el resto de la validación.
func TestUserRegister_SinVinculoIgnoraCamposInvalidos(t *testing.T) {
	e := newEnv()
	bad := []dto.RegisterUserRequest{
		{DocumentType: "passport", DocumentID: "Z1"},
		{Username: "no-email", Password: "x", DocumentType: "passport", DocumentID: "Z1", Importance: 99},
		{Username: "u@x.com", BirthDate: "ayer", DocumentType: "CC", DocumentID: "1", FirstName: "123"},
	}
	for _, in := range bad {
		_, err := e.users.Register(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrNoMembership)
	}
}

func TestUserRegister_ConVinculoActualizaElMismoRegistro(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c := e.mustCompany(t, "c@x.com", "C")
	m := e.mustProvision(t, c.ID, "passport", "Z1")

	first, err := e.users.Register(ctx, userReq("fresh@x.com", "passport", "Z1"))
	require.NoError(t, err)
	assert.Equal(t, m.UserID, first.ID)
	assert.Equal(t, "passport", first.DocumentType)
	assert.Equal(t, "Z1", first.DocumentID)
	assert.Equal(t, "fresh@x.com", first.Username)
	require.NotNil(t, first.BirthDate)
	assert.Equal(t, "1992-07-01", *first.BirthDate)

	in := userReq("other@x.com", "passport", "Z1")
	in.Importance = 9
	second, err := e.users.Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "other@x.com", second.Username)
	assert.Equal(t, 9, second.Importance)
	assert.Equal(t, first.RegistrationDate, second.RegistrationDate)
}

func TestUserRegister_LoginDeOtraCuentaEsDuplicado(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c := e.mustCompany(t, "c@x.com", "C")
	e.mustProvision(t, c.ID, "CC", "100")

	_, err := e.users.Register(ctx, userReq("c@x.com", "CC", "100"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "email already registered", err.Error())
}

func TestUserRegister_MismoLoginMismoDocumentoActualiza(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	c := e.mustCompany(t, "c@x.com", "C")
	e.mustProvision(t, c.ID, "CC", "100")

	_, err := e.users.Register(ctx, userReq("u@x.com", "CC", "100"))
	require.NoError(t, err)
	_, err = e.users.Register(ctx, userReq("u@x.com", "CC", "100"))
	assert.NoError(t, err)
}

func TestUserRegister_ValidaCamposConVinculo(t *testing.T) {
	e := newEnv()
	c := e.mustCompany(t, "c@x.com", "C")
	e.mustProvision(t, c.ID, "CC", "100")

	in := userReq("u@x.com", "CC", "100")
	in.Importance = 11
	_, err := e.users.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserGetByID_EmpresaSoloVeMiembros(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	a := e.mustCompany(t, "a@x.com", "A")
	b := e.mustCompany(t, "b@x.com", "B")
	m := e.mustProvision(t, a.ID, "CC", "1")

	got, err := e.users.GetByID(ctx, companyClaim(a.ID), m.UserID)
	require.NoError(t, err)
	assert.Equal(t, m.UserID, got.ID)

	_, err = e.users.GetByID(ctx, companyClaim(b.ID), m.UserID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "not authorized to view this user", err.Error())

	_, err = e.users.GetByID(ctx, managerClaim("m"), m.UserID)
	assert.NoError(t, err)

	_, err = e.users.GetByID(ctx, userClaim(m.UserID), m.UserID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "not authorized to view users", err.Error())

	_, err = e.users.GetByID(ctx, nil, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	_, err = e.users.GetByID(ctx, managerClaim("m"), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserCompanies_OrdenYPropiedad(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	a := e.mustCompany(t, "a@x.com", "A")
	b := e.mustCompany(t, "b@x.com", "B")
	e.mustProvision(t, b.ID, "CC", "7")
	m := e.mustProvision(t, a.ID, "CC", "7")

	byDoc := dto.UserDocumentRequest{DocumentType: "CC", DocumentID: "7"}
	out, err := e.users.CompaniesByDocument(ctx, userClaim(m.UserID), byDoc)
	require.NoError(t, err)
	assert.Equal(t, m.UserID, out.UserID)
	require.Len(t, out.Companies, 2)
	assert.Equal(t, b.ID, out.Companies[0].ID)
	assert.Equal(t, a.ID, out.Companies[1].ID)

	out, err = e.users.CompaniesByUserID(ctx, managerClaim("m"), dto.UserIDRequest{ID: m.UserID})
	require.NoError(t, err)
	assert.Len(t, out.Companies, 2)

	_, err = e.users.CompaniesByUserID(ctx, userClaim(uuid.NewString()), dto.UserIDRequest{ID: m.UserID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "not authorized to view this user's companies", err.Error())

	_, err = e.users.CompaniesByDocument(ctx, companyClaim(a.ID), byDoc)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "not authorized to view user companies", err.Error())

	_, err = e.users.CompaniesByDocument(ctx, nil, byDoc)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	_, err = e.users.CompaniesByDocument(ctx, managerClaim("m"), dto.UserDocumentRequest{DocumentType: "CC", DocumentID: "nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProvision_VinculoSimetrico(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	a := e.mustCompany(t, "a@x.com", "A")
	b := e.mustCompany(t, "b@x.com", "B")
	m := e.mustProvision(t, a.ID, "CC", "5")

	again := e.mustProvision(t, a.ID, "CC", "5")
	assert.Equal(t, m.UserID, again.UserID)
	assert.Equal(t, m.CreatedAt, again.CreatedAt, "repetir el vínculo no crea otro")

	repos := e.store.Repositories()
	ok, err := repos.Memberships.IsMember(ctx, a.ID, m.UserID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Memberships.IsMember(ctx, b.ID, m.UserID)
	require.NoError(t, err)
	assert.False(t, ok)

	companies, err := repos.Memberships.CompaniesFor(ctx, m.UserID)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, a.ID, companies[0].ID)
}

func TestProvision_Autorizacion(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	a := e.mustCompany(t, "a@x.com", "A")
	b := e.mustCompany(t, "b@x.com", "B")
	in := dto.ProvisionMemberRequest{CompanyID: a.ID, DocumentType: "CC", DocumentID: "1", FirstName: "Luis", LastName: "Pérez"}

	_, err := e.users.Provision(ctx, nil, in)
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	_, err = e.users.Provision(ctx, companyClaim(b.ID), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.users.Provision(ctx, userClaim(uuid.NewString()), in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := e.users.Provision(ctx, managerClaim("m"), in)
	require.NoError(t, err)
	assert.Equal(t, a.ID, out.CompanyID)

	noCompany := in
	noCompany.CompanyID = ""
	_, err = e.users.Provision(ctx, managerClaim("m"), noCompany)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	ghost := uuid.NewString()
	_, err = e.users.Provision(ctx, companyClaim(ghost), noCompany)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateEmail(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	a := e.mustCompany(t, "a@x.com", "A")
	b := e.mustCompany(t, "b@x.com", "B")
	e.mustProvision(t, a.ID, "CC", "3")
	u, err := e.users.Register(ctx, userReq("u@x.com", "CC", "3"))
	require.NoError(t, err)

	out, err := e.users.ValidateEmail(ctx, "u@x.com", a.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.UserValidationResponse{ID: u.ID, Email: "u@x.com", CompanyID: a.ID, CompanyName: "A"}, *out)

	_, err = e.users.ValidateEmail(ctx, "u@x.com", b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "user does not belong to this company", err.Error())

	_, err = e.users.ValidateEmail(ctx, "nadie@x.com", a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = e.users.ValidateEmail(ctx, "u@x.com", "no-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
