package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitestock/sitestock-api/internal/application/document"
	"github.com/sitestock/sitestock-api/internal/application/inventory"
	"github.com/sitestock/sitestock-api/internal/application/transfer"
	"github.com/sitestock/sitestock-api/internal/application/usecase"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	InventoryUC      *inventory.UseCase
	ReorderUC        *inventory.ReorderUseCase
	CreateTransferUC *transfer.CreateTransferUseCase
	TransferUC       *transfer.UseCase
	UserUC           *usecase.UserUseCase
	VehicleUC        *usecase.VehicleUseCase
	DocumentUC       *document.UseCase
	JWTSecret        string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (read-only directory)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)

	// Vehicles
	vehicles := protected.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.Get)

	// Inventory records
	records := protected.Group("/inventory/records")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReorderUC)
	records.Post("/", inventoryHandler.Create)
	records.Get("/", inventoryHandler.List)
	records.Get("/:id", inventoryHandler.Get)
	records.Put("/:id", inventoryHandler.Update)
	records.Post("/:id/adjust", inventoryHandler.Adjust)
	records.Delete("/:id", inventoryHandler.Delete)
	protected.Get("/inventory/reorder-report", inventoryHandler.ReorderReport)

	// Material transfers. Creation moves stock, so it is limited to the
	// store and admin roles; site users can still read their own.
	transfers := protected.Group("/inventory/transfers")
	transferHandler := NewTransferHandler(deps.CreateTransferUC, deps.TransferUC)
	transfers.Post("/", RequireRole(entity.RoleStore, entity.RoleAdmin), transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.Get)
	transfers.Put("/:id", transferHandler.Update)
	transfers.Delete("/:id", transferHandler.Delete)

	// Transfer line items
	transfers.Get("/:id/items", transferHandler.ListItems)
	transfers.Post("/:id/items", transferHandler.AddItem)
	transfers.Put("/:id/items/:itemId", transferHandler.UpdateItem)
	transfers.Delete("/:id/items/:itemId", transferHandler.DeleteItem)

	// Transfer documents
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	transfers.Get("/:id/challan", documentHandler.Challan)
	transfers.Get("/:id/manifest", documentHandler.Manifest)
}
