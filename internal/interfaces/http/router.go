package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/auth"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	MaterialUC     *usecase.MaterialUseCase
	InventoryUC    *usecase.InventoryUseCase
	PriceUC        *usecase.PriceUseCase
	PriceExportUC  *usecase.PriceExportUseCase
	InquiryUC      *usecase.InquiryUseCase
	NotificationUC *usecase.NotificationUseCase
	JWTSecret      string
}

// Router registers the API routes. Literal segments are registered before
// parameter captures so e.g. /materials/grouped never matches /:id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/profile", userHandler.Profile)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Get("/distributors", userHandler.Distributors)

	// Materials catalog. The catalog is readable by every role; writes are
	// restricted to distributors and manufacturers.
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	canEditCatalog := RequireRole(entity.RoleDistributor, entity.RoleManufacturer)
	materials.Get("/", materialHandler.List)
	materials.Get("/grouped/categories", materialHandler.Grouped)
	materials.Post("/", canEditCatalog, materialHandler.Create)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", canEditCatalog, materialHandler.Update)
	materials.Delete("/:id", canEditCatalog, materialHandler.Delete)

	// Inventory (distributor-owned; the stocked view is open to any role)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", RequireRole(entity.RoleDistributor), inventoryHandler.ListOwn)
	inventory.Get("/distributor/:id", inventoryHandler.ListStocked)
	inventory.Put("/:materialId", RequireRole(entity.RoleDistributor), inventoryHandler.Upsert)

	// Prices (writes and exports are distributor-only)
	prices := protected.Group("/prices")
	priceHandler := NewPriceHandler(deps.PriceUC, deps.PriceExportUC)
	distributorOnly := RequireRole(entity.RoleDistributor)
	prices.Post("/", distributorOnly, priceHandler.Set)
	prices.Get("/my-prices", distributorOnly, priceHandler.MyPrices)
	prices.Get("/all", priceHandler.All)
	prices.Get("/export", distributorOnly, priceHandler.Export)
	prices.Get("/history/:materialId", distributorOnly, priceHandler.History)
	prices.Get("/distributor/:id", priceHandler.ByDistributor)

	// Inquiries (consumers open them, distributors answer them)
	inquiries := protected.Group("/inquiries")
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	inquiries.Post("/", RequireRole(entity.RoleConsumer), inquiryHandler.Create)
	inquiries.Get("/received", RequireRole(entity.RoleDistributor), inquiryHandler.Received)
	inquiries.Get("/sent", RequireRole(entity.RoleConsumer), inquiryHandler.Sent)
	inquiries.Put("/:id/status", RequireRole(entity.RoleDistributor), inquiryHandler.UpdateStatus)

	// Notifications (any authenticated role)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", notificationHandler.Send)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Put("/read-all", notificationHandler.MarkAllRead)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)
}
