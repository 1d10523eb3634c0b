package response

import (
	"time"
)

type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleCustomer      UserRole = "customer"
)

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	Role      UserRole  `json:"role"`
}
