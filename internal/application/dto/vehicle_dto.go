package dto

import "time"

// CreateVehicleRequest body for POST /api/vehicles.
type CreateVehicleRequest struct {
	RegistrationNo string `json:"registrationNo"`
	Model          string `json:"model,omitempty"`
	DriverName     string `json:"driverName,omitempty"`
}

// VehicleResponse vehicle as returned by the API.
type VehicleResponse struct {
	ID             string    `json:"id"`
	RegistrationNo string    `json:"registrationNo"`
	Model          string    `json:"model,omitempty"`
	DriverName     string    `json:"driverName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// VehicleListResponse paginated vehicle listing.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
