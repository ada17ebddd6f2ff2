package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/dto"
	"github.com/jdgomez/taller-api/internal/domain"
)

// kindStatus mapea el Kind de un error de dominio a su status HTTP.
var kindStatus = map[domain.Kind]int{
	domain.KindValidation:   fiber.StatusBadRequest,
	domain.KindUnauthorized: fiber.StatusUnauthorized,
	domain.KindForbidden:    fiber.StatusForbidden,
	domain.KindNotFound:     fiber.StatusNotFound,
	domain.KindConflict:     fiber.StatusConflict,
	domain.KindInternal:     fiber.StatusInternalServerError,
}

var kindCode = map[domain.Kind]string{
	domain.KindValidation:   "VALIDATION",
	domain.KindUnauthorized: "UNAUTHORIZED",
	domain.KindForbidden:    "FORBIDDEN",
	domain.KindNotFound:     "NOT_FOUND",
	domain.KindConflict:     "CONFLICT",
	domain.KindInternal:     "INTERNAL",
}

// respondError traduce un error de dominio a la respuesta HTTP. Los errores
// que no son de dominio se tratan como internos.
func respondError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	msg := err.Error()
	if kind == domain.KindInternal {
		// no filtrar detalles de fallos internos al cliente
		msg = "Internal server error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: kindCode[kind], Message: msg})
}

// parseBody decodifica el cuerpo JSON en un mapa genérico para las fábricas
// de DTOs, que validan campo a campo.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	body := map[string]any{}
	if err := c.BodyParser(&body); err != nil {
		return nil, domain.NewValidation("Invalid request body")
	}
	return body, nil
}
