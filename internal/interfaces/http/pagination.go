package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// pageOf lee skip y limit de la query. Sin limit el listado no se pagina (nil).
func (val *Validator) pageOf(c *fiber.Ctx) (*dto.PageRequest, error) {
	if c.Query("limit") == "" {
		return nil, nil
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return nil, validationErrors{domain.NewFieldError(domain.ErrInvalidInput, c.Query("limit"), "skip y limit deben ser números enteros", "limit", domain.LocationQuery)}
	}
	if err := val.Struct(page, domain.LocationQuery); err != nil {
		return nil, err
	}
	return &page, nil
}
