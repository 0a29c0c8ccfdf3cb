package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,pwbytes"`
}

// PermissionResponse permiso dentro de un rol.
type PermissionResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RoleResponse rol con sus permisos.
type RoleResponse struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	Permissions []PermissionResponse `json:"permissions"`
}

// ProfileResponse proyección del usuario autenticado: empresa y grafo de roles, sin hash.
type ProfileResponse struct {
	UserResponse
	IsAdmin bool             `json:"is_admin"`
	Company *CompanyResponse `json:"company"`
	Roles   []RoleResponse   `json:"roles"`
}

// LoginResponse salida de login y renew.
type LoginResponse struct {
	User  ProfileResponse `json:"user"`
	Token string          `json:"token"`
}

// PasswordRecoveryRequest solicitud de correo de recuperación.
type PasswordRecoveryRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetRequest nueva contraseña con token de recuperación (header x-reset-token).
type PasswordResetRequest struct {
	Password string `json:"password" validate:"required,min=8,pwbytes"`
}

// ChangePasswordRequest cambio de contraseña del usuario autenticado.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8,pwbytes"`
	NewPassword string `json:"new_password" validate:"required,min=8,pwbytes"`
}

// UpdateProfileRequest actualización de los datos propios.
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
}
