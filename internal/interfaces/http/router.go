package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/appointments"
	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC        *usecase.ItemUseCase
	SupplierUC    *usecase.SupplierUseCase
	CategoryUC    *usecase.CategoryUseCase
	LedgerUC      *usecase.LedgerUseCase
	AppointmentUC *appointments.UseCase
	RecordTxnUC   *inventory.RecordTransactionUseCase
	ReportUC      *reports.LedgerReportUseCase
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
	adminOnly := RequireRole(entity.RoleAdmin)

	// Inventario (protegido)
	items := protected.Group("/inventory")
	itemHandler := NewItemHandler(deps.ItemUC)
	transactionHandler := NewTransactionHandler(deps.RecordTxnUC, deps.LedgerUC, deps.ReportUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	items.Get("/:id/transactions", transactionHandler.ListByItem)

	// Transacciones de stock (protegido)
	transactions := protected.Group("/transactions")
	transactions.Post("/", transactionHandler.Record)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/report", transactionHandler.DownloadReport)

	// Citas de reabastecimiento (protegido)
	appts := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appts.Post("/", appointmentHandler.Schedule)
	appts.Get("/", appointmentHandler.List)
	appts.Get("/:id", appointmentHandler.GetByID)
	appts.Put("/:id", appointmentHandler.Update)
	appts.Post("/:id/complete", appointmentHandler.Complete)
	appts.Post("/:id/cancel", appointmentHandler.Cancel)

	// Proveedores (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Categorías (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Bitácora de actividad (protegido, solo lectura)
	activity := protected.Group("/activity-logs")
	activityHandler := NewActivityHandler(deps.LedgerUC)
	activity.Get("/", activityHandler.List)
}
