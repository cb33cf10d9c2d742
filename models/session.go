package models

// Role of an authenticated user.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleBusiness Role = "business"
)

// Valid reports whether the role is one the application knows.
func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleBusiness
}

// SavedSession is the JSON shape persisted in the session slot. Nulls mark
// absent fields so logged-out state round-trips explicitly.
type SavedSession struct {
	Token *string `json:"token"`
	Role  *Role   `json:"role"`
}
