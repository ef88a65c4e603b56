package models

import (
	"time"
)

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "PENDING"
	ReportStatusReviewed  ReportStatus = "REVIEWED"
	ReportStatusDismissed ReportStatus = "DISMISSED"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusDismissed:
		return true
	}
	return false
}

// Report is a user flag against a scam, awaiting moderation.
type Report struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	ScamID      uint         `gorm:"not null;index" json:"scamId"`
	Scam        Scam         `gorm:"foreignKey:ScamID;constraint:OnDelete:CASCADE" json:"scam"`
	UserID      uint         `gorm:"not null;index" json:"userId"`
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Reason      string       `gorm:"not null;type:varchar(200)" json:"reason"`
	Description *string      `gorm:"type:text" json:"description"`
	Status      ReportStatus `gorm:"not null;type:varchar(20);default:'PENDING';index" json:"status"`
}
