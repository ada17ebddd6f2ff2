package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *usecase.AuthUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	PhoneUC    *usecase.PhoneUseCase
	RepairUC   *usecase.RepairUseCase
	UserRepo   repository.UserRepository
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/validate-email/:token", authHandler.ValidateEmail)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Users (protegido; las reglas por rol viven en el caso de uso)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle-status", userHandler.ToggleStatus)
	users.Delete("/:id", userHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/export.csv", customerHandler.ExportCSV)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Patch("/:id/toggle-status", customerHandler.ToggleStatus)
	customers.Delete("/:id", customerHandler.Delete)

	// Phones (protegido)
	phones := protected.Group("/phones")
	phoneHandler := NewPhoneHandler(deps.PhoneUC)
	phones.Post("/", phoneHandler.Create)
	phones.Get("/", phoneHandler.List)
	phones.Get("/customer/:customerId", phoneHandler.ListByCustomer)
	phones.Get("/:id", phoneHandler.GetByID)
	phones.Put("/:id", phoneHandler.Update)
	phones.Delete("/:id", phoneHandler.Delete)

	// Repairs (protegido)
	repairs := protected.Group("/repairs")
	repairHandler := NewRepairHandler(deps.RepairUC)
	repairs.Post("/", repairHandler.Create)
	repairs.Get("/", repairHandler.List)
	repairs.Get("/statistics", repairHandler.Statistics)
	repairs.Get("/export.xlsx", repairHandler.ExportXLSX)
	repairs.Get("/phone/:phoneId", repairHandler.ListByPhone)
	repairs.Get("/customer/:customerId", repairHandler.ListByCustomer)
	repairs.Get("/:id", repairHandler.GetByID)
	repairs.Get("/:id/order.pdf", repairHandler.OrderPDF)
	repairs.Put("/:id", repairHandler.Update)
	repairs.Delete("/:id", repairHandler.Delete)
}
