package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gulpcr/digitalslips-sub001/internal/receipts"
)

// RegisterReceiptRoutes wires receipt endpoints onto the protected group.
func RegisterReceiptRoutes(r fiber.Router, h *receipts.Handler) {
	group := r.Group("/receipts")
	group.Get("/recent", h.Recent)
	group.Get("/:transactionId", h.Get)
	group.Post("/:transactionId/verify", h.Verify)
}
