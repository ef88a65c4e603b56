package models

import (
	"strings"
	"time"

	"github.com/lib/pq"
)

type ScamCategory string

const (
	CategoryPhishing    ScamCategory = "PHISHING"
	CategoryFakeStore   ScamCategory = "FAKE_STORE"
	CategoryInvestment  ScamCategory = "INVESTMENT"
	CategoryRomance     ScamCategory = "ROMANCE"
	CategoryJobOffer    ScamCategory = "JOB_OFFER"
	CategoryFakeSupport ScamCategory = "FAKE_SUPPORT"
	CategoryPix         ScamCategory = "PIX"
	CategorySocialMedia ScamCategory = "SOCIAL_MEDIA"
	CategoryPhone       ScamCategory = "PHONE"
	CategoryOther       ScamCategory = "OTHER"
)

var ScamCategories = []ScamCategory{
	CategoryPhishing,
	CategoryFakeStore,
	CategoryInvestment,
	CategoryRomance,
	CategoryJobOffer,
	CategoryFakeSupport,
	CategoryPix,
	CategorySocialMedia,
	CategoryPhone,
	CategoryOther,
}

func (c ScamCategory) Valid() bool {
	for _, known := range ScamCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Slug is the Category.slug this enum value is described by.
func (c ScamCategory) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), "_", "-")
}

type ScamStatus string

const (
	ScamStatusPending       ScamStatus = "PENDING"
	ScamStatusVerified      ScamStatus = "VERIFIED"
	ScamStatusUnverified    ScamStatus = "UNVERIFIED"
	ScamStatusInvestigating ScamStatus = "INVESTIGATING"
)

func (s ScamStatus) Valid() bool {
	switch s {
	case ScamStatusPending, ScamStatusVerified, ScamStatusUnverified, ScamStatusInvestigating:
		return true
	}
	return false
}

type Scam struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	Title           string         `gorm:"not null;type:varchar(200)" json:"title"`
	Description     string         `gorm:"not null;type:text" json:"description"`
	Category        ScamCategory   `gorm:"not null;type:varchar(30);index" json:"category"`
	Status          ScamStatus     `gorm:"not null;type:varchar(20);default:'PENDING';index" json:"status"`
	IsResolved      bool           `gorm:"not null;default:false;index" json:"isResolved"`
	ResolvedAt      *time.Time     `json:"resolvedAt"`
	ResolutionNote  *string        `gorm:"type:text" json:"resolutionNote"`
	ResolutionLinks pq.StringArray `gorm:"type:text[]" json:"resolutionLinks"`
	ScammerWebsite  *string        `json:"scammerWebsite"`
	ScammerDomain   *string        `gorm:"index" json:"-"` // normalized ScammerWebsite, used by domain checks
	ScammerPhone    *string        `gorm:"type:varchar(30)" json:"scammerPhone"`
	AmountLost      *float64       `gorm:"type:decimal(12,2)" json:"amountLost"`
	Views           int            `gorm:"not null;default:0" json:"views"`
	Evidence        pq.StringArray `gorm:"type:text[]" json:"evidence"`
	UserID          uint           `gorm:"not null;index" json:"userId"`
	User            User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}
