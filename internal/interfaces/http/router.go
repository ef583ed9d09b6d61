package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-pos/internal/application/auth"
	"github.com/tu-usuario/ventas-pos/internal/application/credit"
	"github.com/tu-usuario/ventas-pos/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FinalizeSale  *sales.FinalizeSaleUseCase
	ComprobanteUC *sales.ComprobanteUseCase
	CustomerUC    *sales.CustomerUseCase
	CreditUC      *credit.CreditUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.FinalizeSale, deps.ComprobanteUC)
	creditHandler := NewCreditHandler(deps.CreditUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/pdf", saleHandler.PDF)
	salesGroup.Get("/:id/xml", saleHandler.XML)
	salesGroup.Get("/:id/legacy-credits", creditHandler.ListLegacyBySale)

	// Credit plans (protegido)
	plans := protected.Group("/credit-plans")
	plans.Post("/", creditHandler.CreatePlan)
	plans.Get("/:id", creditHandler.GetPlan)
	plans.Post("/:id/payments", creditHandler.RecordPayment)
	plans.Get("/:id/payments", creditHandler.ListPayments)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
}
