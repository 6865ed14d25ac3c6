package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/directorio-api/internal/domain"
)

func TestError_UnwrapCategoria(t *testing.T) {
	err := domain.NotFound("company not found")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "company not found", err.Error())

	wrapped := fmt.Errorf("get company: %w", err)
	assert.ErrorIs(t, wrapped, domain.ErrNotFound)
	assert.Equal(t, "company not found", domain.Message(wrapped, "x"))
}

func TestMessage_ErrorSinCategoria_UsaFallback(t *testing.T) {
	err := errors.New("pq: relation \"accounts\" does not exist")
	assert.Equal(t, "internal server error", domain.Message(err, "internal server error"))
}

func TestAuthenticationRequired_NoEsForbidden(t *testing.T) {
	err := domain.AuthenticationRequired()
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}
