package dto

import "time"

// TransferItemRequest one requested line of a material transfer.
type TransferItemRequest struct {
	ItemCode string `json:"itemCode"`
	ItemName string `json:"itemName"`
	Type     string `json:"type"`
	Quantity int64  `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
	Notes    string `json:"notes,omitempty"`
	HSNCode  string `json:"hsnCode,omitempty"`
}

// CreateTransferRequest body for POST /api/inventory/transfers.
// Field names follow the admin dashboard's wire format.
type CreateTransferRequest struct {
	TransferID    string                `json:"transferID,omitempty"`
	FromLocation  string                `json:"fromLocation,omitempty"`
	ToLocation    string                `json:"toLocation,omitempty"`
	RequestedDate *time.Time            `json:"requestedDate,omitempty"`
	FromUserID    string                `json:"fromUserId"`
	ToUserID      string                `json:"toUserId"`
	Items         []TransferItemRequest `json:"items"`
	Status        string                `json:"status,omitempty"`
	Priority      string                `json:"priority,omitempty"`
	VehicleID     *string               `json:"vehicleId,omitempty"`
	ApprovedByID  *string               `json:"approvedById,omitempty"`
	DriverName    string                `json:"driverName,omitempty"`
	ETAMinutes    *int                  `json:"etaMinutes,omitempty"`
	InventoryType string                `json:"inventoryType,omitempty"`
	GSTIn         string                `json:"gstIn,omitempty"`
	State         string                `json:"state,omitempty"`
	StateCode     string                `json:"stateCode,omitempty"`
}

// UpdateTransferRequest body for PUT /api/inventory/transfers/:id.
// Status writes are validated against the transition table.
type UpdateTransferRequest struct {
	FromLocation  *string    `json:"fromLocation,omitempty"`
	ToLocation    *string    `json:"toLocation,omitempty"`
	RequestedDate *time.Time `json:"requestedDate,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	VehicleID     *string    `json:"vehicleId,omitempty"`
	ApprovedByID  *string    `json:"approvedById,omitempty"`
	DriverName    *string    `json:"driverName,omitempty"`
	ETAMinutes    *int       `json:"etaMinutes,omitempty"`
	Signature     *string    `json:"signature,omitempty"`
}

// UpdateTransferItemRequest body for PUT .../items/:itemId.
// Item identity (code/name/type) is immutable after creation.
type UpdateTransferItemRequest struct {
	Quantity *int64  `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	HSNCode  *string `json:"hsnCode,omitempty"`
}

// TransferItemResponse line item as returned by the API.
type TransferItemResponse struct {
	ID                string    `json:"id"`
	TransferID        string    `json:"transferId"`
	ItemCode          string    `json:"itemCode"`
	ItemName          string    `json:"itemName"`
	Type              string    `json:"type"`
	Quantity          int64     `json:"quantity"`
	Unit              string    `json:"unit,omitempty"`
	HSNCode           string    `json:"hsnCode,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	InventoryRecordID *string   `json:"inventoryRecordId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// TransferResponse transfer header with its items and resolved references.
type TransferResponse struct {
	ID            string                 `json:"id"`
	TransferID    string                 `json:"transferID"`
	FromLocation  string                 `json:"fromLocation,omitempty"`
	ToLocation    string                 `json:"toLocation,omitempty"`
	RequestedDate time.Time              `json:"requestedDate"`
	Status        string                 `json:"status"`
	Priority      string                 `json:"priority"`
	FromUserID    string                 `json:"fromUserId"`
	ToUserID      string                 `json:"toUserId"`
	CreatedByID   string                 `json:"createdById"`
	DriverName    string                 `json:"driverName,omitempty"`
	ETAMinutes    *int                   `json:"etaMinutes,omitempty"`
	Signature     string                 `json:"signature,omitempty"`
	InventoryType string                 `json:"inventoryType,omitempty"`
	GSTIn         string                 `json:"gstIn,omitempty"`
	State         string                 `json:"state,omitempty"`
	StateCode     string                 `json:"stateCode,omitempty"`
	Items         []TransferItemResponse `json:"items"`
	Vehicle       *VehicleResponse       `json:"vehicle,omitempty"`
	ApprovedBy    *UserResponse          `json:"approvedBy,omitempty"`
	CreatedBy     *UserResponse          `json:"createdBy,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// CreateTransferResponse body for a successful creation.
type CreateTransferResponse struct {
	Transfer       TransferResponse `json:"transfer"`
	ItemsProcessed int              `json:"itemsProcessed"`
}

// TransferListResponse paginated transfer listing.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
