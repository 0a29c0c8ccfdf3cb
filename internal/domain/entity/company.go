package entity

import "time"

// Company representa una empresa cliente (tenant). Sus usuarios solo ven registros de la misma empresa.
type Company struct {
	ID        string
	Name      string // en minúsculas
	RUT       string // en minúsculas, único
	CityID    int
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil = activa
}

// IsDeleted indica si la empresa fue eliminada lógicamente.
func (c *Company) IsDeleted() bool {
	return c.DeletedAt != nil
}
