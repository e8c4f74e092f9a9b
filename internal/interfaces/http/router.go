package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/serranotex/serrano-tex-ims/internal/application/analytics"
	"github.com/serranotex/serrano-tex-ims/internal/application/auth"
	"github.com/serranotex/serrano-tex-ims/internal/application/inventory"
	"github.com/serranotex/serrano-tex-ims/internal/application/usecase"
	"github.com/serranotex/serrano-tex-ims/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	CatalogUC       *usecase.CatalogUseCase
	CustomerUC      *usecase.CustomerUseCase
	SaleUC          *usecase.SaleUseCase
	InventoryUC     *inventory.UseCase
	ReplenishmentUC *inventory.ReplenishmentUseCase
	DashboardUC     *appanalytics.DashboardUseCase
	ReportUC        *appanalytics.ReportUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Cada ruta protegida declara el permiso que exige.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	can := RequirePermission

	authHandler := NewAuthHandler(deps.AuthUC)
	validationHandler := NewValidationHandler(deps.ProductUC, deps.CustomerUC, deps.InventoryUC, deps.SaleUC, deps.AuthUC)

	// Público
	api.Post("/auth/login", authHandler.Login)
	api.Post("/validate/password", validationHandler.Password)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	users := protected.Group("/users", can(access.UsersManage))
	users.Get("/", authHandler.ListUsers)
	users.Post("/", authHandler.Register)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/categories", can(access.ProductsView), catalogHandler.ListCategories)
	protected.Post("/categories", can(access.SettingsManage), catalogHandler.CreateCategory)
	protected.Get("/locations", can(access.InventoryView), catalogHandler.ListLocations)
	protected.Post("/locations", can(access.SettingsManage), catalogHandler.CreateLocation)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReplenishmentUC)
	products.Get("/", can(access.ProductsView), productHandler.List)
	products.Post("/", can(access.ProductsCreate), productHandler.Create)
	products.Get("/:id", can(access.ProductsView), productHandler.GetByID)
	products.Put("/:id", can(access.ProductsUpdate), productHandler.Update)
	products.Delete("/:id", can(access.ProductsDelete), productHandler.Delete)
	products.Get("/:id/movements", can(access.InventoryView), inventoryHandler.Movements)

	// Inventory
	inv := protected.Group("/inventory")
	inv.Get("/", can(access.InventoryView), inventoryHandler.List)
	inv.Put("/", can(access.InventoryUpdate), inventoryHandler.Upsert)
	inv.Get("/low-stock", can(access.InventoryView), inventoryHandler.LowStock)
	inv.Post("/adjust", can(access.InventoryAdjust), inventoryHandler.Adjust)
	inv.Post("/transfer", can(access.InventoryTransfer), inventoryHandler.Transfer)
	inv.Get("/:productId/:locationId", can(access.InventoryView), inventoryHandler.Get)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", can(access.CustomersView), customerHandler.List)
	customers.Post("/", can(access.CustomersCreate), customerHandler.Create)
	customers.Get("/:id", can(access.CustomersView), customerHandler.GetByID)
	customers.Put("/:id", can(access.CustomersUpdate), customerHandler.Update)
	customers.Delete("/:id", can(access.CustomersDelete), customerHandler.Delete)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReportUC)
	sales.Get("/", can(access.SalesView), saleHandler.List)
	sales.Post("/", can(access.SalesCreate), saleHandler.Create)
	sales.Get("/:id", can(access.SalesView), saleHandler.GetByID)
	sales.Patch("/:id/status", can(access.SalesUpdate), saleHandler.UpdateStatus)
	sales.Delete("/:id", can(access.SalesDelete), saleHandler.Delete)
	sales.Get("/:id/receipt", can(access.SalesView), saleHandler.Receipt)

	// Dashboard y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	protected.Get("/dashboard", can(access.ReportsView), dashboardHandler.Get)
	protected.Get("/reports/sales.pdf", can(access.ReportsExport), dashboardHandler.SalesReport)

	// Validación en seco de formularios
	validate := protected.Group("/validate")
	validate.Post("/product", validationHandler.Product)
	validate.Post("/customer", validationHandler.Customer)
	validate.Post("/inventory", validationHandler.Inventory)
	validate.Post("/sale", validationHandler.Sale)
	validate.Post("/registration", validationHandler.Registration)
}
