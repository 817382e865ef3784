package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/gulpcr/digitalslips-sub001/internal/identity"
)

// RegisterIdentityRoutes wires the registration endpoint directly onto the
// identity service.
func RegisterIdentityRoutes(r fiber.Router, ids *identity.Service) {
	r.Post("/register", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		user, err := ids.Register(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password, FullName: req.FullName})
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{
			"user_id":    user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"created_at": user.CreatedAt,
		})
	})
}
