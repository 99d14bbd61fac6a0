package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/seefirst/seefirst-api/internal/domain"
)

// parseID lee el parámetro de ruta :id como int64 positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
