package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sitestock/sitestock-api/internal/application/document"
)

// DocumentHandler serves transfer document downloads (protected).
type DocumentHandler struct {
	uc *document.UseCase
}

func NewDocumentHandler(uc *document.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Challan streams the delivery challan PDF for a transfer.
// GET /api/inventory/transfers/:id/challan
func (h *DocumentHandler) Challan(c *fiber.Ctx) error {
	pdf, err := h.uc.ChallanPDF(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="challan-`+c.Params("id")+`.pdf"`)
	return c.Send(pdf)
}

// Manifest streams the dispatch manifest XML for a transfer.
// GET /api/inventory/transfers/:id/manifest
func (h *DocumentHandler) Manifest(c *fiber.Ctx) error {
	xml, err := h.uc.ManifestXML(GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(xml)
}
