package dto

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// NewCompanyResponse proyecta la entidad a su salida HTTP.
func NewCompanyResponse(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		RUT:       c.RUT,
		CityID:    c.CityID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		DeletedAt: c.DeletedAt,
	}
}

// NewUserResponse proyecta el usuario sin el hash de la contraseña.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

// NewProfileResponse usuario con empresa y roles cargados (login, renew).
func NewProfileResponse(u *entity.User) ProfileResponse {
	p := ProfileResponse{
		UserResponse: NewUserResponse(u),
		IsAdmin:      u.IsAdmin(),
		Roles:        make([]RoleResponse, 0, len(u.Roles)),
	}
	if u.Company != nil {
		c := NewCompanyResponse(u.Company)
		p.Company = &c
	}
	for _, r := range u.Roles {
		role := RoleResponse{ID: r.ID, Name: r.Name, Permissions: make([]PermissionResponse, 0, len(r.Permissions))}
		for _, perm := range r.Permissions {
			role.Permissions = append(role.Permissions, PermissionResponse{ID: perm.ID, Name: perm.Name})
		}
		p.Roles = append(p.Roles, role)
	}
	return p
}

// NewCityResponse proyecta una ciudad.
func NewCityResponse(c *entity.City) CityResponse {
	return CityResponse{ID: c.ID, Name: c.Name, Region: c.Region}
}

// NewPaymentResponse proyecta un pago con fecha en formato YYYY-MM-DD.
func NewPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		Status:       p.Status.Name,
		StatusID:     p.StatusID,
		Method:       p.Method.Name,
		MethodID:     p.PaymentMethodID,
		Amount:       p.Amount,
		Date:         p.Date.Format("2006-01-02"),
		Reference:    p.Reference,
		IssuingName:  p.IssuingName,
		IssuingEmail: p.IssuingEmail,
		CreatedAt:    p.CreatedAt,
	}
}
