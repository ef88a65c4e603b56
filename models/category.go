package models

import (
	"github.com/lib/pq"
)

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

type Category struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	Slug        string         `gorm:"uniqueIndex;not null;type:varchar(50)" json:"slug"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `json:"icon"`
	Tips        pq.StringArray `gorm:"type:text[]" json:"tips"`
	RiskLevel   RiskLevel      `gorm:"not null;type:varchar(20)" json:"riskLevel"`
	Order       int            `gorm:"column:sort_order;not null;default:0" json:"order"`
}
