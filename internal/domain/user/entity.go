package user

import "time"

// AdminUser is a back-office account (HR/admin). Terminal attendance
// endpoints are unauthenticated; everything else requires an admin token.
type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleHR         Role = "hr"
)
