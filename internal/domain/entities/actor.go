package entities

// Role is the actor role forwarded by the authentication gateway.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleWarehouse Role = "warehouse"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleWarehouse:
		return true
	}
	return false
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Role   Role
}
