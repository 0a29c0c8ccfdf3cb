package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/pkg/password"
	"github.com/jhoicas/backoffice-api/pkg/rut"
)

// Validator valida DTOs con las etiquetas `validate` y reporta los campos con su nombre JSON.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra las reglas propias (rut, pwbytes) y el nombre de campo por etiqueta json/query.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("rut", func(fl validator.FieldLevel) bool {
		return rut.Validate(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("pwbytes", func(fl validator.FieldLevel) bool {
		return password.FitsHash(fl.Field().String())
	})
	return &Validator{v: v}
}

// Struct valida in; los errores salen como validationErrors en la ubicación indicada.
func (val *Validator) Struct(in any, location string) error {
	err := val.v.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := make(validationErrors, 0, len(ves))
	for _, fe := range ves {
		out = append(out, domain.NewFieldError(domain.ErrInvalidInput, valueOf(fe), messageOf(fe), fe.Field(), location))
	}
	return out
}

// bind parsea el cuerpo JSON y lo valida.
func (val *Validator) bind(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return validationErrors{domain.NewFieldError(domain.ErrInvalidInput, nil, msgInvalidBody, "", domain.LocationBody)}
	}
	return val.Struct(in, domain.LocationBody)
}

func valueOf(fe validator.FieldError) any {
	if strings.Contains(strings.ToLower(fe.Field()), "password") {
		return nil
	}
	v := fe.Value()
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return v
}

func messageOf(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio", field)
	case "email":
		return "El email es inválido"
	case "rut":
		return "El rut es inválido"
	case "pwbytes":
		return fmt.Sprintf("El campo %s debe contener máximo %d bytes", field, password.MaxBytes)
	case "uuid":
		return fmt.Sprintf("El campo %s es inválido", field)
	case "numeric":
		return fmt.Sprintf("El campo %s debe contener solo números", field)
	case "min":
		if isText(fe) {
			return fmt.Sprintf("El campo %s debe contener mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "max":
		if isText(fe) {
			return fmt.Sprintf("El campo %s debe contener máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("El campo %s debe ser menor o igual a %s", field, fe.Param())
	}
	return fmt.Sprintf("El campo %s es inválido", field)
}

func isText(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
