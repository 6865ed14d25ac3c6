package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-api/internal/domain"
)

// Altas simultáneas de empresas y managers con el mismo login: solo una gana.
func TestRegister_ConcurrenteMismoLogin(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	const perKind = 4

	var wg sync.WaitGroup
	errs := make(chan error, 2*perKind)
	for i := 0; i < perKind; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := e.companies.Register(ctx, companyReq("same@x.com", "Acme"))
			errs <- err
		}()
		go func() {
			defer wg.Done()
			_, err := e.managers.Register(ctx, managerReq("same@x.com"))
			errs <- err
		}()
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
	assert.Equal(t, 2*perKind-1, dup)
}
