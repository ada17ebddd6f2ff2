package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios (protegido). Las reglas
// de autorización por rol viven en el caso de uso.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewCreateUser(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in, CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewUpdateUser(c.Params("id"), body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(in, CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus PATCH /api/users/:id/toggle-status
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Params("id"), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), CurrentUser(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
