package models

import "time"

// Risk levels derived from the spam percentage
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// ClassificationResult partitions the analyzed users into spam, legitimate
// and unknown sets. The three sets are disjoint and together cover every
// record that was classified.
type ClassificationResult struct {
	Threshold  time.Time
	Spam       []*UserRecord
	Legitimate []*UserRecord
	Unknown    []*UserRecord
}

// TotalUsers returns the number of classified users
func (r *ClassificationResult) TotalUsers() int {
	return len(r.Spam) + len(r.Legitimate) + len(r.Unknown)
}

// SpamPercentage returns the share of flagged accounts among all classified
// users, as a percentage
func (r *ClassificationResult) SpamPercentage() float64 {
	total := r.TotalUsers()
	if total == 0 {
		return 0
	}
	return float64(len(r.Spam)) / float64(total) * 100
}

// RiskLevel maps the spam percentage to a coarse risk bucket
func (r *ClassificationResult) RiskLevel() string {
	pct := r.SpamPercentage()
	switch {
	case pct <= 10:
		return RiskLow
	case pct <= 25:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// RateLimitStatus is an advisory snapshot of the API quota
type RateLimitStatus struct {
	Remaining int
	Limit     int
	ResetAt   time.Time
}
