package transfer

import (
	"context"

	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, passing repositories
// bound to that tx. Guarantees all-or-nothing for the reconciliation flow.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		trRepo repository.TransferRepository,
	) error) error
}

// StockPolicy controls how strictly source inventory is checked while a
// transfer is created. The original system shipped with the checks disabled;
// the policy keeps that behavior reachable without making it the default.
type StockPolicy string

const (
	// PolicyEnforce aborts on missing source records or insufficient quantity.
	PolicyEnforce StockPolicy = "enforce"
	// PolicySkipMissing skips deduction for lines with no source record;
	// quantity checks still apply to matched lines.
	PolicySkipMissing StockPolicy = "skip_missing"
	// PolicyOff performs no checks and deducts only where possible.
	PolicyOff StockPolicy = "off"
)
