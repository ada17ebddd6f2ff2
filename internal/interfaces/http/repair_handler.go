package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/infrastructure/export"
)

// RepairHandler maneja las peticiones HTTP de reparaciones (protegido).
type RepairHandler struct {
	uc *usecase.RepairUseCase
}

// NewRepairHandler construye el handler.
func NewRepairHandler(uc *usecase.RepairUseCase) *RepairHandler {
	return &RepairHandler{uc: uc}
}

// Create POST /api/repairs
func (h *RepairHandler) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewCreateRepair(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/repairs?page=1&limit=10
func (h *RepairHandler) List(c *fiber.Ctx) error {
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

// Statistics GET /api/repairs/statistics
func (h *RepairHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByPhone GET /api/repairs/phone/:phoneId
func (h *RepairHandler) ListByPhone(c *fiber.Ctx) error {
	out, err := h.uc.ListByPhone(c.Params("phoneId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCustomer GET /api/repairs/customer/:customerId
func (h *RepairHandler) ListByCustomer(c *fiber.Ctx) error {
	out, err := h.uc.ListByCustomer(c.Params("customerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/repairs/:id
func (h *RepairHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/repairs/:id
func (h *RepairHandler) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewUpdateRepair(c.Params("id"), body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/repairs/:id
func (h *RepairHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Repair deleted"})
}

// OrderPDF GET /api/repairs/:id/order.pdf
func (h *RepairHandler) OrderPDF(c *fiber.Ctx) error {
	data, err := h.uc.OrderPDF(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("orden_%s.pdf", c.Params("id"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportXLSX GET /api/repairs/export.xlsx
func (h *RepairHandler) ExportXLSX(c *fiber.Ctx) error {
	repairs, err := h.uc.ListAllForExport()
	if err != nil {
		return respondError(c, err)
	}
	data, err := export.RepairsXLSX(repairs)
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("reparaciones_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
