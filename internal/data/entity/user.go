package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is a registered account. Role is always "user" for stored accounts; the
// super-admin is a login-time credential special case and never hits this table.
type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
