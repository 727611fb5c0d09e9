// Package user defines the identity model and the credential store adapter.
// The password hash never leaves this package's Store except through the
// User struct handed to the auth service, and is never serialized to JSON.
package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access role assigned to an identity at creation time.
// It is immutable after signup.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User is an identity record. Email is stored lowercased and unique.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"not null" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// BeforeCreate generates a UUID if not already set.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Summary is the public-safe projection returned by signup and login.
type Summary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Detail is the projection returned by the whoami lookup.
type Detail struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the public-safe projection of the user.
func (u *User) Summary() Summary {
	return Summary{ID: u.ID.String(), Email: u.Email, Role: u.Role}
}

// Detail returns the whoami projection of the user.
func (u *User) Detail() Detail {
	return Detail{ID: u.ID.String(), Email: u.Email, Role: u.Role, CreatedAt: u.CreatedAt}
}
