package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Content   string    `gorm:"not null;type:text" json:"content"`
	ScamID    uint      `gorm:"not null;index" json:"scamId"`
	Scam      Scam      `gorm:"foreignKey:ScamID;constraint:OnDelete:CASCADE" json:"scam"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}
