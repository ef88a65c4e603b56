package models

import (
	"time"
)

type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ScamID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_scam" json:"scamId"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_scam;index" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Scam Scam `gorm:"foreignKey:ScamID;constraint:OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
