package domain

// UserRole controls which operations a user may perform. Admins may apply
// transactions and manage items; staff get read access.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User represents an operator of the application.
type User struct {
	UserID   string   `json:"userID"` // Primary Key (UUID)
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	AuditFields
}
