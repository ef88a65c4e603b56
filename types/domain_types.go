package types

import "time"

type DomainRisk string

const (
	RiskSafe    DomainRisk = "safe"
	RiskWarning DomainRisk = "warning"
	RiskDanger  DomainRisk = "danger"
)

// DomainRiskFor maps a report count to its risk bucket.
func DomainRiskFor(count int64) DomainRisk {
	switch {
	case count > 5:
		return RiskDanger
	case count > 0:
		return RiskWarning
	default:
		return RiskSafe
	}
}

type DomainReport struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type DomainCheckResult struct {
	Domain      string         `json:"domain"`
	Risk        DomainRisk     `json:"risk"`
	ReportCount int64          `json:"reportCount"`
	Reports     []DomainReport `json:"reports"`
	CheckedAt   time.Time      `json:"checkedAt"`
}
