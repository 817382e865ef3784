package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gulpcr/digitalslips-sub001/internal/auth"
	"github.com/gulpcr/digitalslips-sub001/internal/authority"
	"github.com/gulpcr/digitalslips-sub001/internal/config"
	"github.com/gulpcr/digitalslips-sub001/internal/identity"
	"github.com/gulpcr/digitalslips-sub001/internal/middleware"
	"github.com/gulpcr/digitalslips-sub001/internal/notification"
	"github.com/gulpcr/digitalslips-sub001/internal/receipts"
	"github.com/gulpcr/digitalslips-sub001/internal/theme"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}
	identitySvc := identity.NewService(identityRepo)
	authSvc := auth.NewService(d.Cfg, identityRepo)
	authHandler := auth.NewHandler(identitySvc, authSvc)

	var activityRepo receipts.Repository
	if d.DB != nil {
		activityRepo = receipts.NewPostgresRepository(d.DB)
	} else {
		activityRepo = receipts.NewMemoryRepository()
	}
	notifier := notification.NewLoggerNotifier(d.Logger)
	authorityClient := authority.New(d.Cfg.ReceiptAPIURL)
	receiptSvc, err := receipts.NewService(authorityClient, activityRepo, notifier, d.Logger)
	if err != nil {
		return err
	}
	receiptHandler := receipts.NewHandler(receiptSvc)
	themeHandler := theme.NewHandler()

	// Stylesheet lives outside the API group so the SPA can link it directly.
	app.Get("/theme.css", themeHandler.Stylesheet)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterThemeRoutes(api, themeHandler)
	RegisterIdentityRoutes(api, identitySvc)
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	jwtmw := middleware.JWTAuth(d.Cfg, identityRepo)
	protected := api.Group("", jwtmw)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		if uid == "" {
			return c.SendStatus(http.StatusUnauthorized)
		}
		user, err := identityRepo.FindByID(c.UserContext(), uid)
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "user not found")
		}
		return c.JSON(fiber.Map{
			"user_id":    user.ID,
			"email":      user.Email,
			"full_name":  user.FullName,
			"created_at": user.CreatedAt,
			"last_login": user.LastLogin,
		})
	})
	RegisterReceiptRoutes(protected, receiptHandler)

	return nil
}
