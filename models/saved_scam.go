package models

import "time"

// SavedScam is a user's bookmark of a scam. The composite key keeps it unique per pair.
type SavedScam struct {
	UserID  uint      `gorm:"primaryKey" json:"userId"`
	ScamID  uint      `gorm:"primaryKey;index" json:"scamId"`
	SavedAt time.Time `gorm:"autoCreateTime" json:"savedAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Scam Scam `gorm:"foreignKey:ScamID;constraint:OnDelete:CASCADE" json:"scam"`
}
