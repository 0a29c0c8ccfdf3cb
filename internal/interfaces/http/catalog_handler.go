package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// CityHandler consulta de ciudades.
type CityHandler struct {
	uc *usecase.CityUseCase
}

// NewCityHandler construye el handler de ciudades.
func NewCityHandler(uc *usecase.CityUseCase) *CityHandler {
	return &CityHandler{uc: uc}
}

// List godoc
// @Summary      Listar ciudades
// @Tags         cities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CityResponse
// @Router       /api/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ciudad por ID
// @Tags         cities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la ciudad"
// @Success      200  {object}  dto.CityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cities/{id} [get]
func (h *CityHandler) GetByID(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return writeError(c, domain.NewFieldError(domain.ErrInvalidInput, raw, fmt.Sprintf("El id: %s es inválido", raw), "id", domain.LocationParams))
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PaymentHandler consulta del registro de pagos y su comprobante (solo administrador).
type PaymentHandler struct {
	uc  *usecase.PaymentUseCase
	val *Validator
}

// NewPaymentHandler construye el handler de pagos.
func NewPaymentHandler(uc *usecase.PaymentUseCase, val *Validator) *PaymentHandler {
	return &PaymentHandler{uc: uc, val: val}
}

// List godoc
// @Summary      Listar pagos
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "Resultados a omitir"  default(0)
// @Param        limit  query  int  false  "Límite por página"
// @Success      200    {object}  dto.PaymentListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	page, err := h.val.pageOf(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	if page == nil {
		return c.JSON(out.Rows)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de un pago
// @Tags         payments
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Receipt(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="comprobante-%s.pdf"`, id))
	return c.Send(pdf)
}
