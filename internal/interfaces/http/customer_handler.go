package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/infrastructure/export"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewCreateCustomer(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/customers?page=1&limit=10
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	p, err := dto.NewPagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(p)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewUpdateCustomer(c.Params("id"), body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus PATCH /api/customers/:id/toggle-status
func (h *CustomerHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

// ExportCSV GET /api/customers/export.csv
func (h *CustomerHandler) ExportCSV(c *fiber.Ctx) error {
	customers, err := h.uc.ListAllForExport()
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.CustomersCSV(customers)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("clientes_%s.csv", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=ISO-8859-1")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
