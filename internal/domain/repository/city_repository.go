package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CityRepository lookup de ciudades (solo lectura).
type CityRepository interface {
	GetByID(ctx context.Context, id int) (*entity.City, error)
	List(ctx context.Context) ([]*entity.City, error)
}
