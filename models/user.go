package models

import "time"

// Role gates what a user may do. Immutable after registration.
type Role string

const (
	RoleUser Role = "user"
	RoleHost Role = "host"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleHost
}

// User is a platform account. Password is kept and compared as plaintext.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role"`
	XP        int       `json:"xp"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsHost is a shorthand used by route guards and services.
func (u *User) IsHost() bool {
	return u != nil && u.Role == RoleHost
}

// Public is u without its password, for API responses.
func (u User) Public() User {
	u.Password = ""
	return u
}
