package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.CityRepository = (*CityRepo)(nil)

// CityRepo catálogo de ciudades (solo lectura).
type CityRepo struct {
	q Querier
}

// NewCityRepository construye el adaptador de ciudades.
func NewCityRepository(q Querier) *CityRepo {
	return &CityRepo{q: q}
}

// GetByID obtiene una ciudad. Devuelve nil, nil si no existe.
func (r *CityRepo) GetByID(ctx context.Context, id int) (*entity.City, error) {
	var c entity.City
	err := r.q.QueryRow(ctx, `SELECT id, name, region FROM cities WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.Region)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get city: %w", err)
	}
	return &c, nil
}

// List devuelve todas las ciudades ordenadas por nombre.
func (r *CityRepo) List(ctx context.Context) ([]*entity.City, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, region FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.City, 0)
	for rows.Next() {
		var c entity.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Region); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
