package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`            // Primary key
	Username     string    `gorm:"unique;not null" json:"username"` // Unique username
	PasswordHash string    `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
	Email        string    `gorm:"not null" json:"email"`           // Contact email
	CreatedAt    time.Time `json:"created_at"`                      // Creation timestamp
}
