package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
)

// PhoneHandler maneja las peticiones HTTP de equipos (protegido).
type PhoneHandler struct {
	uc *usecase.PhoneUseCase
}

// NewPhoneHandler construye el handler.
func NewPhoneHandler(uc *usecase.PhoneUseCase) *PhoneHandler {
	return &PhoneHandler{uc: uc}
}

// Create POST /api/phones
func (h *PhoneHandler) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewCreatePhone(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/phones
func (h *PhoneHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer GET /api/phones/customer/:customerId
func (h *PhoneHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/phones/:id
func (h *PhoneHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/phones/:id
func (h *PhoneHandler) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewUpdatePhone(c.Params("id"), body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/phones/:id
func (h *PhoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Phone deleted"})
}
