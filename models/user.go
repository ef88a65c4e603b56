package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Bio       *string   `gorm:"type:text" json:"bio"`
	Avatar    *string   `json:"avatar"`
	GoogleID  *string   `gorm:"uniqueIndex" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"isAdmin"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
}
