package models

import "github.com/google/uuid"

// User is an account that can sign in to the admin dashboard.
// The bcrypt password hash never leaves the server.
type User struct {
	ID       uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Username string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Password string    `json:"-" db:"password" gorm:"type:text;not null"`
	IsAdmin  bool      `json:"isAdmin" db:"is_admin" gorm:"not null;default:false"`
}

// Projection is the shape returned by the auth endpoints.
func (u User) Projection() map[string]any {
	return map[string]any{
		"id":       u.PublicID,
		"username": u.Username,
		"isAdmin":  u.IsAdmin,
	}
}
