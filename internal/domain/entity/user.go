package entity

import "time"

// User representa un usuario del sistema.
// CompanyID nil identifica a un administrador global (sin empresa).
type User struct {
	ID           string
	CompanyID    *string
	Name         string
	Email        string // en minúsculas, único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// Cargados bajo demanda (login y guard de autorización).
	Company *Company
	Roles   []Role
}

// IsAdmin un usuario sin empresa es administrador.
func (u *User) IsAdmin() bool {
	return u.CompanyID == nil
}

// IsDeleted indica si el usuario fue eliminado lógicamente.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
