package entity

import "time"

// Application roles. The auth provider issues tokens carrying one of these.
const (
	RoleAdmin = "admin"
	RoleStore = "store"
	RoleSite  = "site"
)

// User is a directory entry resolved for transfer parties and RBAC decisions.
// Credentials live in the external auth provider, not here.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Location  string
	CreatedAt time.Time
}
