package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CompanyUC *usecase.CompanyUseCase
	UserUC    *usecase.UserUseCase
	CityUC    *usecase.CityUseCase
	PaymentUC *usecase.PaymentUseCase
	Metrics   *Metrics // nil = sin /metrics
	Log       zerolog.Logger
	AppName   string
}

// Router registra middlewares de observabilidad y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	val := NewValidator()
	authenticated := AuthMiddleware(deps.AuthUC)
	adminOnly := RequireAdmin()

	api := app.Group("/api")

	// Auth: /password se registra antes de /:id.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, val)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password-recovery", authHandler.PasswordRecovery)
	authGroup.Post("/password-reset", authHandler.PasswordReset)
	authGroup.Get("/renew", authenticated, authHandler.Renew)
	authGroup.Put("/password", authenticated, authHandler.ChangePassword)
	authGroup.Put("/:id", authenticated, authHandler.UpdateProfile)

	// Companies (administrador)
	companies := api.Group("/companies", authenticated, adminOnly)
	companyHandler := NewCompanyHandler(deps.CompanyUC, val)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Post("/:id/restore", companyHandler.Restore)

	// Users (tenant del actor)
	users := api.Group("/users", authenticated)
	userHandler := NewUserHandler(deps.UserUC, val)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Post("/:id/restore", userHandler.Restore)

	// Cities (lookup)
	cities := api.Group("/cities", authenticated)
	cityHandler := NewCityHandler(deps.CityUC)
	cities.Get("/", cityHandler.List)
	cities.Get("/:id", cityHandler.GetByID)

	// Payments (administrador, solo lectura)
	payments := api.Group("/payments", authenticated, adminOnly)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, val)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Get("/:id/receipt", paymentHandler.Receipt)
}
