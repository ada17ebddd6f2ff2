package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain/entity"
	"github.com/jdgomez/taller-api/internal/domain/repository"
	"github.com/jdgomez/taller-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID      = "user_id"
	LocalCurrentUser = "current_user"
)

// AuthMiddleware valida el Bearer Token JWT, carga el usuario actuante desde
// el repositorio y lo deja en c.Locals. Tokens de usuarios inexistentes o
// inactivos se rechazan.
func AuthMiddleware(jwtSecret string, userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		user, err := userRepo.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Internal server error"})
		}
		if user == nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalCurrentUser, user)
		return c.Next()
	}
}

// CurrentUser devuelve el usuario actuante del contexto (después del
// middleware de auth).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalCurrentUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
