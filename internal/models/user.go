// Package models contains data models for the EHR backend.
package models

import "time"

// Role determines the action set permitted to an identity.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is one of the three permitted roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

// Privileged reports whether r bypasses the patient ownership gate.
func (r Role) Privileged() bool {
	return r == RoleAdmin || r == RoleDoctor
}

// User represents a registered identity. Email is stored lowercase so the
// unique index enforces case-insensitive uniqueness.
type User struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Role         Role      `json:"role" gorm:"type:varchar(16);not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}
