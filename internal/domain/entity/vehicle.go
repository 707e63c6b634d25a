package entity

import "time"

// Vehicle can be assigned to a material transfer for dispatch.
type Vehicle struct {
	ID             string
	RegistrationNo string
	Model          string
	DriverName     string
	CreatedAt      time.Time
}
