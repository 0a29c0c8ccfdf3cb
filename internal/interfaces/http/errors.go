package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/moogar0880/problems"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

const problemMediaType = "application/problem+json"

// Mensajes genéricos: la causa real de un fallo de autenticación no se expone.
const (
	msgUnauthorized = "Token no válido"
	msgForbidden    = "Acceso denegado"
	msgInvalidBody  = "El cuerpo de la petición es inválido"
	msgRouteMissing = "La ruta solicitada no existe"
)

// validationErrors agrupa los errores de campo de un DTO. Unwrap a domain.ErrInvalidInput.
type validationErrors []*domain.FieldError

func (v validationErrors) Error() string {
	if len(v) == 0 {
		return domain.ErrInvalidInput.Error()
	}
	return v[0].Msg
}

func (v validationErrors) Unwrap() error {
	return domain.ErrInvalidInput
}

// statusOf traduce un error de dominio a su código HTTP. 0 = error inesperado.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotDeleted),
		errors.Is(err, domain.ErrEmailNotFound),
		errors.Is(err, domain.ErrWrongPassword):
		return fiber.StatusBadRequest
	}
	return 0
}

func itemOf(fe *domain.FieldError) dto.ErrorItem {
	return dto.ErrorItem{Value: fe.Value, Msg: fe.Msg, Param: fe.Param, Location: fe.Location}
}

// writeError escribe la respuesta de error de un caso de uso y devuelve nil (la respuesta ya quedó escrita).
func writeError(c *fiber.Ctx, err error) error {
	var verrs validationErrors
	if errors.As(err, &verrs) {
		items := make([]dto.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			items = append(items, itemOf(fe))
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Errors: items})
	}

	status := statusOf(err)
	var fe *domain.FieldError
	if status != 0 && errors.As(err, &fe) {
		return c.Status(status).JSON(dto.ErrorResponse{Errors: []dto.ErrorItem{itemOf(fe)}})
	}

	switch status {
	case fiber.StatusUnauthorized:
		return c.Status(status).JSON(dto.ErrorResponse{Errors: []dto.ErrorItem{{Msg: msgUnauthorized, Location: domain.LocationHeaders}}})
	case fiber.StatusForbidden:
		return c.Status(status).JSON(dto.ErrorResponse{Errors: []dto.ErrorItem{{Msg: msgForbidden}}})
	case 0:
		return internalError(c, err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Errors: []dto.ErrorItem{{Msg: err.Error()}}})
}

// internalError registra el error y responde un problem+json opaco.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")

	p := problems.NewDetailedProblem(fiber.StatusInternalServerError, "Ocurrió un error inesperado, intente más tarde")
	p.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, problemMediaType)
	c.Status(fiber.StatusInternalServerError)
	return c.JSON(p, problemMediaType)
}

// ErrorHandler manejador final de fiber: errores de ruta y de middleware (recover incluido).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		msg := ferr.Message
		if ferr.Code == fiber.StatusNotFound {
			msg = msgRouteMissing
		}
		if ferr.Code >= fiber.StatusInternalServerError {
			return internalError(c, err)
		}
		return c.Status(ferr.Code).JSON(dto.ErrorResponse{Errors: []dto.ErrorItem{{Msg: msg}}})
	}
	return writeError(c, err)
}
