package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sitestock/sitestock-api/internal/application/dto"
	"github.com/sitestock/sitestock-api/internal/domain/entity"
	"github.com/sitestock/sitestock-api/internal/domain/repository"
)

// ReorderUseCase builds the reorder report: records at or below their
// reorder level with a suggested order quantity.
type ReorderUseCase struct {
	repo repository.InventoryRepository
}

// NewReorderUseCase builds the use case.
func NewReorderUseCase(repo repository.InventoryRepository) *ReorderUseCase {
	return &ReorderUseCase{repo: repo}
}

// GenerateReorderReport lists the caller's records below reorder level,
// most depleted first. Admins get all owners' records.
func (uc *ReorderUseCase) GenerateReorderReport(actor dto.Actor) ([]dto.ReorderSuggestionDTO, error) {
	owner := actor.UserID
	if actor.Role == entity.RoleAdmin {
		owner = ""
	}
	records, err := uc.repo.ListBelowReorder(owner)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.ReorderSuggestionDTO, 0, len(records))
	for _, rec := range records {
		suggested := suggestedOrderQty(rec)
		suggestions = append(suggestions, dto.ReorderSuggestionDTO{
			RecordID:           rec.ID,
			ItemCode:           rec.ItemCode,
			ItemName:           rec.ItemName,
			Type:               rec.ItemType,
			Quantity:           rec.Quantity,
			ReorderLevel:       rec.ReorderLevel,
			SuggestedOrderQty:  suggested,
			EstimatedOrderCost: rec.Cost.Mul(decimal.NewFromInt(suggested)),
		})
	}
	// Most depleted relative to the reorder level first.
	sort.SliceStable(suggestions, func(i, j int) bool {
		di := suggestions[i].ReorderLevel - suggestions[i].Quantity
		dj := suggestions[j].ReorderLevel - suggestions[j].Quantity
		return di > dj
	})
	return suggestions, nil
}

// suggestedOrderQty tops the record up to maxStock when set, otherwise to
// safetyStock, otherwise back to the reorder level.
func suggestedOrderQty(rec *entity.InventoryRecord) int64 {
	target := rec.MaxStock
	if target == 0 {
		target = rec.SafetyStock
	}
	if target == 0 {
		target = rec.ReorderLevel
	}
	qty := target - rec.Quantity
	if qty < 0 {
		return 0
	}
	return qty
}
