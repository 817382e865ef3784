package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gulpcr/digitalslips-sub001/internal/theme"
)

// RegisterThemeRoutes wires design-token endpoints.
func RegisterThemeRoutes(r fiber.Router, h *theme.Handler) {
	group := r.Group("/theme")
	group.Get("/", h.Tokens)
	group.Get("/value", h.Resolve)
}
