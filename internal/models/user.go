package models

import "time"

// UserRole distinguishes regular shoppers from administrators.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a registered account. The password hash is never serialized.
type User struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	Avatar       *string   `db:"avatar" json:"avatar,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Address      *string   `db:"address" json:"address,omitempty"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
