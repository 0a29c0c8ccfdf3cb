package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/textnorm"
)

const msgCompanyForbidden = "No tiene permisos para asignar usuarios a otra empresa"

// UserUseCase aplica reglas de negocio para usuarios.
// Toda operación se limita al tenant del actor: un usuario de otra empresa responde como inexistente.
type UserUseCase struct {
	repo      repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{repo: repo, companies: companies}
}

// Create crea un usuario en la empresa del actor (administradores crean administradores).
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := textnorm.Email(in.Email)
	if err := uc.checkEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, hashError(err)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    repository.ScopeOf(actor).CompanyID,
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, domain.EmailInUse(email)
		}
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// List lista los usuarios activos del tenant del actor. page nil devuelve todos.
func (uc *UserUseCase) List(ctx context.Context, actor *entity.User, page *dto.PageRequest) (*dto.UserListResponse, error) {
	scope := repository.ScopeOf(actor)
	limit, offset := bounds(page)
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		rows = append(rows, dto.NewUserResponse(u))
	}
	count := len(rows)
	if page != nil {
		if count, err = uc.repo.Count(ctx, scope); err != nil {
			return nil, err
		}
	}
	return &dto.UserListResponse{Rows: rows, Count: count, Pages: pages(page, count)}, nil
}

// GetByID obtiene un usuario activo del tenant del actor.
func (uc *UserUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Update aplica los campos presentes; la contraseña se vuelve a hashear.
// El nombre se guarda tal como llega, igual que en Create.
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Name != nil {
		user.Name = *in.Name
		changed = true
	}
	if in.Email != nil {
		email := textnorm.Email(*in.Email)
		if email != user.Email {
			if err := uc.checkEmailFree(ctx, email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
		changed = true
	}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, hashError(err)
		}
		user.PasswordHash = hash
		changed = true
	}
	if in.CompanyID != nil {
		if err := uc.checkCompany(ctx, actor, user, *in.CompanyID); err != nil {
			return nil, err
		}
		companyID := *in.CompanyID
		user.CompanyID = &companyID
		changed = true
	}
	if changed {
		user.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, user); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				return nil, domain.EmailInUse(user.Email)
			}
			return nil, err
		}
	}
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Delete elimina lógicamente un usuario del tenant del actor.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, actor, id, false)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := uc.repo.SoftDelete(ctx, id, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.IDNotFound(id)
		}
		return nil, err
	}
	user.DeletedAt = &now
	user.UpdatedAt = now
	out := dto.NewUserResponse(user)
	return &out, nil
}

// Restore revierte la eliminación de un usuario del tenant del actor.
func (uc *UserUseCase) Restore(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	user, err := uc.find(ctx, actor, id, true)
	if err != nil {
		return nil, err
	}
	if !user.IsDeleted() {
		return nil, domain.IDNotDeleted(id)
	}
	if err := uc.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotDeleted) {
			return nil, domain.IDNotDeleted(id)
		}
		return nil, err
	}
	return uc.GetByID(ctx, actor, id)
}

func (uc *UserUseCase) find(ctx context.Context, actor *entity.User, id string, includeDeleted bool) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, repository.ScopeOf(actor), id, includeDeleted)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.IDNotFound(id)
	}
	return user, nil
}

// checkCompany valida la reasignación de empresa: los usuarios de empresa solo pueden
// apuntar a la propia y el destino debe existir y estar activo.
func (uc *UserUseCase) checkCompany(ctx context.Context, actor, user *entity.User, companyID string) error {
	if user.CompanyID != nil && *user.CompanyID == companyID {
		return nil
	}
	if !actor.IsAdmin() && *actor.CompanyID != companyID {
		return domain.NewFieldError(domain.ErrForbidden, companyID, msgCompanyForbidden, "company_id", domain.LocationBody)
	}
	company, err := uc.companies.GetByID(ctx, companyID, false)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ReferenceNotFound("company_id", companyID)
	}
	return nil
}

func (uc *UserUseCase) checkEmailFree(ctx context.Context, email, selfID string) error {
	other, err := uc.repo.GetByEmail(ctx, email, true)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.EmailInUse(email)
	}
	return nil
}

func hashError(err error) error {
	if errors.Is(err, password.ErrTooLong) {
		return domain.PasswordTooLong("password", password.MaxBytes)
	}
	return fmt.Errorf("hash password: %w", err)
}
