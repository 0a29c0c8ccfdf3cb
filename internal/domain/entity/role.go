package entity

// Role agrupa permisos; se asigna a usuarios vía user_roles.
type Role struct {
	ID          int
	Name        string
	Permissions []Permission
}

// Permission permiso atómico concedido a roles vía role_permissions.
type Permission struct {
	ID   int
	Name string
}
