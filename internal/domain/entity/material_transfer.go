package entity

import "time"

// Material transfer statuses.
const (
	TransferStatusPending   = "PENDING"
	TransferStatusInTransit = "IN_TRANSIT"
	TransferStatusDelivered = "DELIVERED"
	TransferStatusRejected  = "REJECTED"
	TransferStatusCancelled = "CANCELLED"
)

// Material transfer priorities.
const (
	TransferPriorityLow    = "LOW"
	TransferPriorityNormal = "NORMAL"
	TransferPriorityHigh   = "HIGH"
	TransferPriorityUrgent = "URGENT"
)

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case TransferPriorityLow, TransferPriorityNormal, TransferPriorityHigh, TransferPriorityUrgent:
		return true
	}
	return false
}

// MaterialTransfer is a transfer header: a movement of inventory quantities
// between two store parties, recorded with its line items.
type MaterialTransfer struct {
	ID            string
	TransferNo    string // human-facing label, e.g. MT-2024-0012
	FromLocation  string
	ToLocation    string
	RequestedDate time.Time
	Status        string
	Priority      string
	FromUserID    string
	ToUserID      string
	CreatedByID   string
	VehicleID     *string
	ApprovedByID  *string
	DriverName    string
	ETAMinutes    *int
	Signature     string
	InventoryType string
	GSTIn         string
	State         string
	StateCode     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaterialTransferItem is a line item belonging to exactly one transfer.
// InventoryRecordID links the source record the quantity was deducted from,
// when one matched at creation time.
type MaterialTransferItem struct {
	ID                string
	TransferID        string // parent MaterialTransfer.ID
	ItemCode          string
	ItemName          string
	ItemType          string
	Quantity          int64
	Unit              string
	HSNCode           string
	Notes             string
	InventoryRecordID *string
	CreatedAt         time.Time
}
