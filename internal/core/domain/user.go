package domain

// UserRole distinguishes administrators from regular users.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleSimples UserRole = "simples"
)

// ParseUserRole validates a raw role value.
func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSimples:
		return RoleSimples, true
	}
	return "", false
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"` // Unique, enforced at the store
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}

// IsAdmin reports whether the user can see and mutate all transactions.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
