// Package model defines database models
package model

import "time"

// Role is a closed set. Anything outside of it fails Valid and gets
// rejected instead of silently passing role checks.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"unique; not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"not null;default:user"`

	// Both set while a password reset is outstanding, both nil otherwise.
	// Never one without the other.
	ResetToken    *string `gorm:"index"`
	ResetTokenExp *time.Time

	CreatedAt time.Time
}
