package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-service/internal/api/http/handlers"
	"github.com/spec-kit/hotel-service/internal/auth"
	"github.com/spec-kit/hotel-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Rooms          *handlers.RoomsHandler
	Reservations   *handlers.ReservationsHandler
	Payments       *handlers.PaymentsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything past the login endpoint and
// the health probes sits behind the authenticator.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/authentication", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/authentication/password", cfg.Auth.ChangePassword)

	customers := protected.Group("/customers")
	customers.Get("/", cfg.Customers.List)
	customers.Post("/create", cfg.Customers.Create)
	customers.Put("/update", cfg.Customers.Update)
	customers.Get("/:id", cfg.Customers.Get)

	rooms := protected.Group("/rooms")
	rooms.Get("/", cfg.Rooms.List)
	rooms.Post("/availablerooms", cfg.Rooms.FindAvailable)
	rooms.Post("/create", auth.RequireRole(domain.RoleAdmin, domain.RoleManager), cfg.Rooms.Create)
	rooms.Put("/update", auth.RequireRole(domain.RoleAdmin, domain.RoleManager), cfg.Rooms.Update)
	rooms.Get("/:id", cfg.Rooms.Get)

	reservations := protected.Group("/reservations")
	reservations.Get("/", cfg.Reservations.List)
	reservations.Get("/today", cfg.Reservations.Arrivals)
	reservations.Post("/create", cfg.Reservations.Create)
	reservations.Put("/update", cfg.Reservations.Update)
	reservations.Get("/:id", cfg.Reservations.Get)

	payments := protected.Group("/payments")
	payments.Post("/create", cfg.Payments.Create)
	payments.Get("/:id", cfg.Payments.ListByReservation)
}
