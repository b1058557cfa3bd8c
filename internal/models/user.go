package models

import "time"

// Roles an account can hold. Both grant identical record-API privileges;
// the role is carried for display purposes.
const (
	RoleAdmin   = "admin"
	RoleOfficer = "officer"
)

// User is an authenticated officer or admin account.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
