package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// CityUseCase consulta del catálogo de ciudades.
type CityUseCase struct {
	repo repository.CityRepository
}

// NewCityUseCase construye el caso de uso.
func NewCityUseCase(repo repository.CityRepository) *CityUseCase {
	return &CityUseCase{repo: repo}
}

// List devuelve todas las ciudades ordenadas por nombre.
func (uc *CityUseCase) List(ctx context.Context) ([]dto.CityResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CityResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCityResponse(c))
	}
	return out, nil
}

// GetByID obtiene una ciudad.
func (uc *CityUseCase) GetByID(ctx context.Context, id int) (*dto.CityResponse, error) {
	city, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, domain.IDNotFound(id)
	}
	out := dto.NewCityResponse(city)
	return &out, nil
}
