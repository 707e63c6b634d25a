package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/application/transfer"
)

// TransferHandler serves the material transfer ledger (protected).
type TransferHandler struct {
	create *transfer.CreateTransferUseCase
	uc     *transfer.UseCase
}

// NewTransferHandler builds the handler.
func NewTransferHandler(create *transfer.CreateTransferUseCase, uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{create: create, uc: uc}
}

// Create runs the reconciliation flow: deduct source stock and persist the
// transfer with its items in one transaction.
// POST /api/inventory/transfers
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.create.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get returns one transfer with items and resolved references.
// GET /api/inventory/transfers/:id
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// List pages the caller's transfers; admins see everyone's.
// GET /api/inventory/transfers
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return invalidBody(c)
	}
	page.DefaultPage()
	resp, err := h.uc.List(GetActor(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update applies metadata changes; status moves go through the transition
// table.
// PUT /api/inventory/transfers/:id
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Delete removes a transfer and its items. Deducted stock is not restored.
// DELETE /api/inventory/transfers/:id
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListItems returns the line items of a transfer.
// GET /api/inventory/transfers/:id/items
func (h *TransferHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.uc.ListItems(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(items),
		"items": items,
	})
}

// AddItem appends a line item. Stock is not touched after creation.
// POST /api/inventory/transfers/:id/items
func (h *TransferHandler) AddItem(c *fiber.Ctx) error {
	var in dto.TransferItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.AddItem(GetActor(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateItem changes a line item's mutable fields.
// PUT /api/inventory/transfers/:id/items/:itemId
func (h *TransferHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateTransferItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	resp, err := h.uc.UpdateItem(GetActor(c), c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// DeleteItem removes a line item.
// DELETE /api/inventory/transfers/:id/items/:itemId
func (h *TransferHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(GetActor(c), c.Params("id"), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
