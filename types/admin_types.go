package types

import "time"

type ActivitySummary struct {
	Description string `json:"description"`
	Time        string `json:"time"`
}

type SystemStats struct {
	TotalUsers     int64             `json:"totalUsers"`
	TotalScams     int64             `json:"totalScams"`
	PendingScams   int64             `json:"pendingScams"`
	VerifiedScams  int64             `json:"verifiedScams"`
	ResolvedScams  int64             `json:"resolvedScams"`
	TotalComments  int64             `json:"totalComments"`
	PendingReports int64             `json:"pendingReports"`
	RecentActivity []ActivitySummary `json:"recentActivity"`
}

type ActivityType string

const (
	ActivityScam    ActivityType = "scam"
	ActivityComment ActivityType = "comment"
	ActivityUser    ActivityType = "user"
)

type ActivityItem struct {
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Time        time.Time    `json:"time"`
	TimeAgo     string       `json:"timeAgo"`
}

type ReportScam struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type Reporter struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PendingReport struct {
	ID          uint       `json:"id"`
	Reason      string     `json:"reason"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	Scam        ReportScam `json:"scam"`
	Reporter    Reporter   `json:"reporter"`
}

type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=REVIEWED DISMISSED"`
}

type UpdateScamStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING VERIFIED UNVERIFIED INVESTIGATING"`
}
