package domain

import (
	"time"

	"github.com/google/uuid"
)

// Permission is a bit flag granting access to a dashboard capability.
type Permission uint8

const (
	PermDashboardUser Permission = 1 << iota
	PermDashboardAdmin
)

// Role determines the permission set a user holds.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Permissions returns the permission bits for the role.
func (r Role) Permissions() Permission {
	switch r {
	case RoleAdmin:
		return PermDashboardUser | PermDashboardAdmin
	case RoleMember:
		return PermDashboardUser
	default:
		return 0
	}
}

// User is an account that can sign in to the dashboard and call the API
// with its opaque bearer token.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Argon2id encoded hash
	APIToken     string    `json:"-"` // Opaque bearer token, rotated via /auth/renew
	Role         Role      `json:"role"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// Can reports whether the user holds the given permission.
func (u *User) Can(p Permission) bool {
	return u != nil && u.Role.Permissions()&p == p
}
