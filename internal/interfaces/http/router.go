package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	appcart "github.com/jhoicas/catalogo-api/internal/application/cart"
	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/ports"
	"github.com/jhoicas/catalogo-api/internal/application/sales"
	appsettings "github.com/jhoicas/catalogo-api/internal/application/settings"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog    *appcatalog.Store
	AdminUC    *appcatalog.AdminUseCase
	Ledger     *appcart.Ledger
	FinalizeUC *sales.FinalizeUseCase
	HistoryUC  *sales.HistoryUseCase
	SettingsUC *appsettings.UseCase
	AuthUC     *auth.UseCase
	Pusher     ports.CatalogPusher
	Sheet      ports.SheetClient
	PDF        ports.CatalogPDFGenerator
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público, solo lectura)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	products := api.Group("/products")
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)

	// Carrito (público, por sesión X-Session-ID)
	cartHandler := NewCartHandler(deps.Ledger, deps.Catalog)
	cart := api.Group("/cart")
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.AddItem)
	cart.Patch("/items/:id", cartHandler.UpdateItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)

	// Checkout (público, por sesión)
	salesHandler := NewSalesHandler(deps.FinalizeUC, deps.HistoryUC)
	api.Post("/checkout", salesHandler.Checkout)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Admin (requiere Bearer Token)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret))

	adminProducts := NewAdminProductHandler(deps.AdminUC, deps.Catalog, deps.PDF, deps.SettingsUC)
	admin.Post("/products", adminProducts.Create)
	admin.Post("/products/enrich", adminProducts.Enrich)
	admin.Put("/products/:id", adminProducts.Update)
	admin.Delete("/products/:id", adminProducts.Delete)
	admin.Get("/catalog.pdf", adminProducts.CatalogPDF)

	admin.Get("/sales", salesHandler.List)
	admin.Get("/sales/report", salesHandler.Report)
	admin.Delete("/sales", salesHandler.Clear)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	admin.Get("/settings", settingsHandler.Get)
	admin.Put("/settings", settingsHandler.Update)

	syncHandler := NewSyncHandler(deps.Catalog, deps.Pusher, deps.Sheet)
	admin.Post("/sync", syncHandler.Trigger)
	admin.Get("/sync/status", syncHandler.Status)
}
