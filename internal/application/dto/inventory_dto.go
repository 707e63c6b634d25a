package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRecordRequest body for POST /api/inventory/records.
type CreateInventoryRecordRequest struct {
	ItemCode     string          `json:"itemCode"`
	ItemName     string          `json:"itemName"`
	Type         string          `json:"type"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	Cost         decimal.Decimal `json:"cost,omitempty"`
	Category     string          `json:"category,omitempty"`
	Location     string          `json:"location,omitempty"`
	ReorderLevel int64           `json:"reorderLevel,omitempty"`
	SafetyStock  int64           `json:"safetyStock,omitempty"`
	MaxStock     int64           `json:"maxStock,omitempty"`
}

// UpdateInventoryRecordRequest body for PUT /api/inventory/records/:id.
// Quantity is deliberately absent: quantity changes go through /adjust or
// the transfer flow so the audit trail stays coherent.
type UpdateInventoryRecordRequest struct {
	Unit         *string          `json:"unit,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Location     *string          `json:"location,omitempty"`
	ReorderLevel *int64           `json:"reorderLevel,omitempty"`
	SafetyStock  *int64           `json:"safetyStock,omitempty"`
	MaxStock     *int64           `json:"maxStock,omitempty"`
}

// AdjustStockRequest body for POST /api/inventory/records/:id/adjust.
// Delta may be negative; results below zero are rejected.
type AdjustStockRequest struct {
	Delta int64  `json:"delta"`
	Notes string `json:"notes,omitempty"`
}

// InventoryRecordResponse stock record as returned by the API.
type InventoryRecordResponse struct {
	ID           string          `json:"id"`
	CreatedByID  string          `json:"createdById"`
	ItemCode     string          `json:"itemCode"`
	ItemName     string          `json:"itemName"`
	Type         string          `json:"type"`
	Quantity     int64           `json:"quantity"`
	Unit         string          `json:"unit,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	Category     string          `json:"category,omitempty"`
	Location     string          `json:"location,omitempty"`
	ReorderLevel int64           `json:"reorderLevel,omitempty"`
	SafetyStock  int64           `json:"safetyStock,omitempty"`
	MaxStock     int64           `json:"maxStock,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// InventoryListResponse paginated record listing.
type InventoryListResponse struct {
	Items []InventoryRecordResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// ReorderSuggestionDTO is one line of the reorder report: a record at or
// below its reorder level with the suggested order quantity.
type ReorderSuggestionDTO struct {
	RecordID           string          `json:"recordId"`
	ItemCode           string          `json:"itemCode"`
	ItemName           string          `json:"itemName"`
	Type               string          `json:"type"`
	Quantity           int64           `json:"quantity"`
	ReorderLevel       int64           `json:"reorderLevel"`
	SuggestedOrderQty  int64           `json:"suggestedOrderQty"`
	EstimatedOrderCost decimal.Decimal `json:"estimatedOrderCost"`
}
