package theme

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the design tokens to the web client.
type Handler struct{}

// NewHandler builds a theme HTTP handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Stylesheet serves the token subset as CSS custom properties.
func (h *Handler) Stylesheet(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
	return c.SendString(CSSVariables())
}

// Tokens serves the full token tree as JSON.
func (h *Handler) Tokens(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(Tokens())
}

// Resolve looks up a single token by its dotted path, provided via the
// "path" query parameter.
func (h *Handler) Resolve(c *fiber.Ctx) error {
	path := c.Query("path")
	value, ok := Value(path)
	if !ok {
		return fiber.NewError(http.StatusNotFound, "unknown token path")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"path": path, "value": value})
}
