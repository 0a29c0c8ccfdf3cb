package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
// El email también es el email del primer usuario de la empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	RUT     string `json:"rut" validate:"required,rut"`
	CityID  int    `json:"city_id" validate:"required,min=1"`
	Address string `json:"address" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,numeric,min=8,max=15"`
	Email   string `json:"email" validate:"required,email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa. Un campo presente sobrescribe el actual.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	RUT     *string `json:"rut" validate:"omitempty,rut"`
	CityID  *int    `json:"city_id" validate:"omitempty,min=1"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,numeric,min=8,max=15"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	RUT       string     `json:"rut"`
	CityID    int        `json:"city_id"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// CreateCompanyResponse empresa creada junto a su primer usuario.
// InitialPassword se entrega una única vez; solo se persiste su hash.
type CreateCompanyResponse struct {
	CompanyResponse
	User            UserResponse `json:"user"`
	InitialPassword string       `json:"initial_password"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Rows  []CompanyResponse `json:"rows"`
	Count int               `json:"count"`
	Pages int               `json:"pages"`
}
