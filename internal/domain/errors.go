package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrNotDeleted         = errors.New("el recurso no ha sido eliminado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailNotFound      = errors.New("email no existe o fue eliminado")
	ErrWrongPassword      = errors.New("contraseña incorrecta")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrTokenGeneration    = errors.New("no se pudo generar el token")
)

// Ubicaciones de un campo dentro de la petición.
const (
	LocationBody    = "body"
	LocationParams  = "params"
	LocationQuery   = "query"
	LocationHeaders = "headers"
)

// FieldError describe un error atribuible a un campo de la petición.
// Unwrap devuelve el error de dominio que clasifica el fallo (ErrNotFound, ErrDuplicate, ...).
type FieldError struct {
	Err      error
	Value    any
	Msg      string
	Param    string
	Location string
}

func (e *FieldError) Error() string {
	return e.Msg
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError construye un FieldError.
func NewFieldError(err error, value any, msg, param, location string) *FieldError {
	return &FieldError{Err: err, Value: value, Msg: msg, Param: param, Location: location}
}

// IDNotFound id ausente, eliminado o fuera del alcance del tenant (mismo mensaje en los tres casos).
func IDNotFound(id any) *FieldError {
	return NewFieldError(ErrNotFound, id, fmt.Sprintf("El id: %v no se encuentra en la base de datos", id), "id", LocationParams)
}

// IDNotDeleted restauración de un registro que no fue eliminado.
func IDNotDeleted(id any) *FieldError {
	return NewFieldError(ErrNotDeleted, id, fmt.Sprintf("El id: %v no ha sido eliminado", id), "id", LocationParams)
}

// RUTInUse rut ya registrado por otra empresa.
func RUTInUse(rut string) *FieldError {
	return NewFieldError(ErrDuplicate, rut, fmt.Sprintf("El rut: %s ya se encuentra en uso", rut), "rut", LocationBody)
}

// EmailInUse email ya registrado por otro usuario.
func EmailInUse(email string) *FieldError {
	return NewFieldError(ErrEmailAlreadyExists, email, fmt.Sprintf("El email: %s ya se encuentra en uso", email), "email", LocationBody)
}

// ReferenceNotFound referencia (city_id, company_id) a un registro inexistente.
func ReferenceNotFound(param string, id any) *FieldError {
	return NewFieldError(ErrInvalidInput, id, fmt.Sprintf("El id: %v no se encuentra en la base de datos", id), param, LocationBody)
}

// PasswordTooLong contraseña más larga que lo que admite el hash.
func PasswordTooLong(param string, maxBytes int) *FieldError {
	return NewFieldError(ErrInvalidInput, nil, fmt.Sprintf("El campo %s debe contener máximo %d bytes", param, maxBytes), param, LocationBody)
}
