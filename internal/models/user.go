package models

// User represents a row of the usuarios table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"nome"`
	Email        string `db:"email"`
	PasswordHash string `db:"senha_hash"`
	Role         string `db:"role"`
	AuditFields
}
