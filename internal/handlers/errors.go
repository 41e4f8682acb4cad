package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SeloLim/naturia/internal/adminapi"
	"github.com/SeloLim/naturia/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// respondUpstream maps an admin API failure onto the storefront response.
// Client errors pass through with their status; everything else (transport
// failures, 5xx) collapses into a 502 so callers can degrade to an
// empty/loading state.
func respondUpstream(c *fiber.Ctx, err error) error {
	if apiErr, ok := adminapi.AsAPIError(err); ok && apiErr.Status >= 400 && apiErr.Status < 500 {
		message := apiErr.Body
		if message == "" {
			message = http.StatusText(apiErr.Status)
		}
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{Error: true, Message: message})
	}
	slog.Error("admin api call failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Error: true, Message: "Upstream service unavailable",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: message})
}
