package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/ports"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/rut"
	"github.com/jhoicas/backoffice-api/pkg/textnorm"
)

// Largo de la contraseña inicial del primer usuario de una empresa.
const initialPasswordLength = 12

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo   repository.CompanyRepository
	cities repository.CityRepository
	users  repository.UserRepository
	tx     ports.TxRunner
	mailer ports.EmailSender
	log    zerolog.Logger
}

// NewCompanyUseCase construye el caso de uso con sus puertos.
func NewCompanyUseCase(
	repo repository.CompanyRepository,
	cities repository.CityRepository,
	users repository.UserRepository,
	tx ports.TxRunner,
	mailer ports.EmailSender,
	log zerolog.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, cities: cities, users: users, tx: tx, mailer: mailer, log: log}
}

// Create crea la empresa y su primer usuario en una sola transacción.
// El primer usuario toma el nombre y email de la empresa y recibe una contraseña aleatoria.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CreateCompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      textnorm.Lower(in.Name),
		RUT:       rut.Normalize(in.RUT),
		CityID:    in.CityID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     textnorm.Email(in.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := uc.repo.GetByRUT(ctx, company.RUT)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.RUTInUse(company.RUT)
	}
	if err := uc.checkCity(ctx, company.CityID); err != nil {
		return nil, err
	}
	taken, err := uc.users.GetByEmail(ctx, company.Email, true)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, domain.EmailInUse(company.Email)
	}

	initial, err := password.Generate(initialPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate initial password: %w", err)
	}
	hash, err := password.Hash(initial)
	if err != nil {
		return nil, fmt.Errorf("hash initial password: %w", err)
	}
	companyID := company.ID
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    &companyID,
		Name:         company.Name,
		Email:        company.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.tx.Run(ctx, func(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) error {
		if err := companyRepo.Create(ctx, company); err != nil {
			return err
		}
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, uc.conflict(err, company)
	}

	if err := uc.mailer.SendWelcome(ctx, user, company, initial); err != nil {
		uc.log.Error().Err(err).Str("company_id", company.ID).Msg("no se pudo enviar el correo de bienvenida")
	}

	return &dto.CreateCompanyResponse{
		CompanyResponse: dto.NewCompanyResponse(company),
		User:            dto.NewUserResponse(user),
		InitialPassword: initial,
	}, nil
}

// List lista empresas activas ordenadas por nombre. page nil devuelve todas.
func (uc *CompanyUseCase) List(ctx context.Context, page *dto.PageRequest) (*dto.CompanyListResponse, error) {
	limit, offset := bounds(page)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		rows = append(rows, dto.NewCompanyResponse(c))
	}
	count := len(rows)
	if page != nil {
		if count, err = uc.repo.Count(ctx); err != nil {
			return nil, err
		}
	}
	return &dto.CompanyListResponse{Rows: rows, Count: count, Pages: pages(page, count)}, nil
}

// GetByID obtiene una empresa activa.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.active(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Update aplica los campos presentes. Sin campos reconocidos devuelve el registro sin cambios.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.active(ctx, id)
	if err != nil {
		return nil, err
	}
	changed := false
	if in.Name != nil {
		company.Name = textnorm.Lower(*in.Name)
		changed = true
	}
	if in.RUT != nil {
		r := rut.Normalize(*in.RUT)
		if r != company.RUT {
			existing, err := uc.repo.GetByRUT(ctx, r)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.RUTInUse(r)
			}
			company.RUT = r
		}
		changed = true
	}
	if in.CityID != nil {
		if err := uc.checkCity(ctx, *in.CityID); err != nil {
			return nil, err
		}
		company.CityID = *in.CityID
		changed = true
	}
	if in.Address != nil {
		company.Address = *in.Address
		changed = true
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
		changed = true
	}
	if in.Email != nil {
		company.Email = textnorm.Email(*in.Email)
		changed = true
	}
	if changed {
		company.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, company); err != nil {
			return nil, uc.conflict(err, company)
		}
	}
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Delete elimina lógicamente una empresa activa.
func (uc *CompanyUseCase) Delete(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.active(ctx, id)
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
	company.DeletedAt = &now
	company.UpdatedAt = now
	out := dto.NewCompanyResponse(company)
	return &out, nil
}

// Restore revierte la eliminación. Una empresa no eliminada responde "no ha sido eliminado".
func (uc *CompanyUseCase) Restore(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.IDNotFound(id)
	}
	if !company.IsDeleted() {
		return nil, domain.IDNotDeleted(id)
	}
	if err := uc.repo.Restore(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotDeleted) {
			return nil, domain.IDNotDeleted(id)
		}
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

func (uc *CompanyUseCase) active(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.IDNotFound(id)
	}
	return company, nil
}

func (uc *CompanyUseCase) checkCity(ctx context.Context, cityID int) error {
	city, err := uc.cities.GetByID(ctx, cityID)
	if err != nil {
		return err
	}
	if city == nil {
		return domain.ReferenceNotFound("city_id", cityID)
	}
	return nil
}

// conflict traduce las violaciones de índice único a errores de campo.
func (uc *CompanyUseCase) conflict(err error, company *entity.Company) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return domain.RUTInUse(company.RUT)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return domain.EmailInUse(company.Email)
	case errors.Is(err, domain.ErrNotFound):
		return domain.IDNotFound(company.ID)
	}
	return err
}
