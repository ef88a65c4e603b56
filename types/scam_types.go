package types

import (
	"time"

	"github.com/alerta-golpe/api-go/models"
)

type ScamCounts struct {
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}

type ScamResponse struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Category        models.ScamCategory `json:"category"`
	Status          models.ScamStatus   `json:"status"`
	IsResolved      bool                `json:"isResolved"`
	ResolvedAt      *time.Time          `json:"resolvedAt"`
	ResolutionNote  *string             `json:"resolutionNote"`
	ResolutionLinks []string            `json:"resolutionLinks"`
	ScammerWebsite  *string             `json:"scammerWebsite"`
	ScammerPhone    *string             `json:"scammerPhone"`
	AmountLost      *float64            `json:"amountLost"`
	Views           int                 `json:"views"`
	Evidence        []string            `json:"evidence"`
	UserID          uint                `json:"userId"`
	User            Author              `json:"user"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Count           ScamCounts          `json:"_count"`
}

type ScamFilter struct {
	Category models.ScamCategory
	Status   models.ScamStatus
	Resolved *bool
	Search   string
	UserID   *uint
	SavedBy  *uint
}

type CreateScamRequest struct {
	Title          string              `json:"title" binding:"required,min=5,max=200"`
	Description    string              `json:"description" binding:"required,min=20"`
	Category       models.ScamCategory `json:"category" binding:"required,scamcategory"`
	ScammerWebsite *string             `json:"scammerWebsite" binding:"omitempty,max=500"`
	ScammerPhone   *string             `json:"scammerPhone" binding:"omitempty,max=30"`
	AmountLost     *float64            `json:"amountLost" binding:"omitempty,min=0"`
	Evidence       []string            `json:"evidence" binding:"omitempty,max=10,dive,max=500"`
}

type UpdateScamRequest struct {
	Title          *string              `json:"title" binding:"omitempty,min=5,max=200"`
	Description    *string              `json:"description" binding:"omitempty,min=20"`
	Category       *models.ScamCategory `json:"category" binding:"omitempty,scamcategory"`
	ScammerWebsite *string              `json:"scammerWebsite" binding:"omitempty,max=500"`
	ScammerPhone   *string              `json:"scammerPhone" binding:"omitempty,max=30"`
	AmountLost     *float64             `json:"amountLost" binding:"omitempty,min=0"`
	Evidence       []string             `json:"evidence" binding:"omitempty,max=10,dive,max=500"`
}

type ResolveScamRequest struct {
	Note  string   `json:"note" binding:"required,min=10,max=2000"`
	Links []string `json:"links" binding:"omitempty,max=10,dive,url"`
}

type ReportScamRequest struct {
	Reason      string  `json:"reason" binding:"required,min=3,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type LikeResult struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
