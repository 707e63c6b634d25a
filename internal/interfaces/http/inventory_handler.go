package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/application/inventory"
)

// InventoryHandler serves the per-owner stock record endpoints (protected).
type InventoryHandler struct {
	uc      *inventory.UseCase
	reorder *inventory.ReorderUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.UseCase, reorder *inventory.ReorderUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, reorder: reorder}
}

// Create registers a stock record owned by the caller.
// POST /api/inventory/records
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInventoryRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get returns one record.
// GET /api/inventory/records/:id
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List pages the caller's records. Admins may pass ?ownerId= to inspect a
// specific owner, or omit it to see everything.
// GET /api/inventory/records
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(GetActor(c), c.Query("ownerId"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update changes descriptive fields and thresholds. Quantity is not
// writable here; use Adjust or the transfer flow.
// PUT /api/inventory/records/:id
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInventoryRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Adjust applies a signed delta to the record's quantity.
// POST /api/inventory/records/:id/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.AdjustStock(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete removes a record.
// DELETE /api/inventory/records/:id
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderReport lists records at or below their reorder level with suggested
// order quantities, most depleted first.
// GET /api/inventory/reorder-report
func (h *InventoryHandler) ReorderReport(c *fiber.Ctx) error {
	list, err := h.reorder.GenerateReorderReport(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":       len(list),
		"suggestions": list,
	})
}
