package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/application/usecase"
)

// AuthHandler maneja registro, login y validación de email.
type AuthHandler struct {
	uc *usecase.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewCreateUser(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	body, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}
	in, err := dto.NewLoginUser(body)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ValidateEmail GET /api/auth/validate-email/:token
func (h *AuthHandler) ValidateEmail(c *fiber.Ctx) error {
	if err := h.uc.ValidateEmail(c.Params("token")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Email validated"})
}
