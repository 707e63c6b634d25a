package document

import (
	"context"

	"github.com/sitestock/sitestock-api/internal/domain/entity"
)

// TransferDocumentData is everything the generators need about one transfer.
type TransferDocumentData struct {
	Transfer *entity.MaterialTransfer
	Items    []*entity.MaterialTransferItem
	FromUser *entity.User
	ToUser   *entity.User
	Vehicle  *entity.Vehicle // nil when none assigned
}

// ChallanGenerator renders the delivery challan PDF for a transfer.
type ChallanGenerator interface {
	GenerateChallanPDF(ctx context.Context, data TransferDocumentData) ([]byte, error)
}

// ManifestBuilder renders the dispatch manifest XML for ERP interchange.
type ManifestBuilder interface {
	BuildManifestXML(data TransferDocumentData) ([]byte, error)
}
