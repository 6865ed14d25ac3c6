package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/domain"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
	"github.com/jhoicas/directorio-api/internal/infrastructure/postgres"
)

// setupTestDB usa una base dedicada (TEST_DATABASE_URL) y la vacía antes de cada test.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE TABLE company_user, managers, users, companies, accounts CASCADE`)
	require.NoError(t, err)
	return pool
}

func newCompany(username, name string) *entity.Company {
	return &entity.Company{
		Account: entity.Account{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: "hash",
			FirstName:    "Ana",
			LastName:     "Gómez",
			Kind:         entity.KindCompany,
			RegisteredAt: time.Now().UTC().Truncate(time.Microsecond),
		},
		Name:        name,
		BirthDate:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "+57 300",
		Country:     "CO",
		City:        "Bogotá",
	}
}

func newStub(doc entity.Document) *entity.User {
	return &entity.User{
		Account: entity.Account{
			ID:           uuid.NewString(),
			FirstName:    "Luis",
			LastName:     "Pérez",
			Kind:         entity.KindUser,
			RegisteredAt: time.Now().UTC().Truncate(time.Microsecond),
		},
		Document:   doc,
		Importance: 1,
	}
}

func TestRepositories_EmpresaYUsuario(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)

	c := newCompany("acme@example.com", "Acme")
	require.NoError(t, repos.Companies.Create(ctx, c))

	err := repos.Companies.Create(ctx, newCompany("acme@example.com", "Otra"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := repos.Companies.FindByName(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)

	exists, err := repos.Accounts.ExistsByUsername(ctx, "acme@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	ok, err := repos.Companies.AssignPlan(ctx, c.ID, "premium")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repos.Companies.AssignPlan(ctx, uuid.NewString(), "premium")
	require.NoError(t, err)
	assert.False(t, ok)

	doc := entity.Document{Type: "CC", ID: "123"}
	u := newStub(doc)
	require.NoError(t, repos.Users.Create(ctx, u))
	stored, err := repos.Users.GetByDocument(ctx, doc)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Registered())
	assert.Nil(t, stored.BirthDate)

	stored.Username = "luis@example.com"
	stored.PasswordHash = "hash"
	require.NoError(t, repos.Users.Update(ctx, stored))
	byLogin, err := repos.Users.GetByUsername(ctx, "luis@example.com")
	require.NoError(t, err)
	require.NotNil(t, byLogin)
	assert.Equal(t, u.ID, byLogin.ID)

	ghost := newStub(entity.Document{Type: "CC", ID: "404"})
	ghost.Username = "ghost@example.com"
	assert.ErrorIs(t, repos.Users.Update(ctx, ghost), domain.ErrNotFound)
}

func TestRepositories_LibroDeVinculos(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repos := postgres.NewRepositories(pool)

	a, b := newCompany("a@example.com", "A"), newCompany("b@example.com", "B")
	require.NoError(t, repos.Companies.Create(ctx, a))
	require.NoError(t, repos.Companies.Create(ctx, b))
	doc := entity.Document{Type: "CC", ID: "9"}
	u := newStub(doc)
	require.NoError(t, repos.Users.Create(ctx, u))

	for _, companyID := range []string{b.ID, a.ID, b.ID} {
		m := &entity.Membership{CompanyID: companyID, UserID: u.ID, Document: doc, CreatedAt: time.Now().UTC()}
		require.NoError(t, repos.Memberships.Link(ctx, m))
	}

	companies, err := repos.Memberships.CompaniesFor(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, b.ID, companies[0].ID)
	assert.Equal(t, a.ID, companies[1].ID)

	first, err := repos.Memberships.FindByDocument(ctx, doc)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, b.ID, first.CompanyID)

	empty, err := repos.Memberships.CompaniesFor(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTxRunner_RollbackAnteError(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	boom := errors.New("boom")

	c := newCompany("tx@example.com", "Tx")
	err := runner.Run(ctx, func(r repository.Repositories) error {
		require.NoError(t, r.Companies.Create(ctx, c))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := postgres.NewRepositories(pool).Companies.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTxRunner_AltasConcurrentesMismoUsername(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	const n = 8

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- runner.Run(ctx, func(r repository.Repositories) error {
				if i%2 == 0 {
					return r.Companies.Create(ctx, newCompany("same@example.com", fmt.Sprintf("Acme %d", i)))
				}
				m := &entity.Manager{Account: newCompany("same@example.com", "").Account}
				m.Kind = entity.KindManager
				return r.Managers.Create(ctx, m)
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	ok, dup := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicate):
			dup++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)

	var accounts int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE username = $1`, "same@example.com").Scan(&accounts))
	assert.Equal(t, 1, accounts)
}
