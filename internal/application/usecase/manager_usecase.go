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

// ManagerUseCase registro y consulta de managers.
type ManagerUseCase struct {
	repos repository.Repositories
	tx    repository.TxRunner
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(repos repository.Repositories, tx repository.TxRunner) *ManagerUseCase {
	return &ManagerUseCase{repos: repos, tx: tx}
}

func usernameTaken() error { return domain.Duplicate("username already registered") }

// Register crea un manager si el login no lo usa ninguna cuenta.
func (uc *ManagerUseCase) Register(ctx context.Context, in dto.CreateManagerRequest) (*dto.ManagerResponse, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.FirstName = validation.NormalizeName(in.FirstName)
	in.LastName = validation.NormalizeName(in.LastName)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	manager := &entity.Manager{Account: entity.Account{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Kind:         entity.KindManager,
		RegisteredAt: now(),
	}}

	err = uc.tx.Run(ctx, func(r repository.Repositories) error {
		exists, err := r.Accounts.ExistsByUsername(ctx, manager.Username)
		if err != nil {
			return err
		}
		if exists {
			return usernameTaken()
		}
		return r.Managers.Create(ctx, manager)
	})
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, usernameTaken()
	}
	if err != nil {
		return nil, err
	}
	return entityToManagerResponse(manager), nil
}

// GetByID devuelve el manager; solo otro manager puede verlo.
func (uc *ManagerUseCase) GetByID(ctx context.Context, claim *policy.Claim, id string) (*dto.ManagerResponse, error) {
	if err := policy.Authorize(policy.OpViewManager, claim, policy.Target{ID: id}); err != nil {
		return nil, err
	}
	id, err := canonicalID(id, "manager")
	if err != nil {
		return nil, err
	}
	manager, err := uc.repos.Managers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manager == nil {
		return nil, domain.NotFound("manager not found")
	}
	return entityToManagerResponse(manager), nil
}
