package models

import (
	"gorm.io/gorm"
)

// Roles a user can hold. Admins are seeded at boot, never registered.
const (
	RoleAdmin       = "admin"
	RoleInterviewer = "interviewer"
	RoleInterviewee = "interviewee"
)

// User represents a registered user in the system.
type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null" json:"username"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:interviewee" json:"role"`
}

// PublicMap returns the fields safe to expose over the API.
func (u *User) PublicMap() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}
