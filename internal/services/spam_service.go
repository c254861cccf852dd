package services

import (
	"time"

	"prscope/internal/models"
)

// veryRecentWindow is how far back an account creation still counts as
// "very recent" for the highest-suspicion subset
const veryRecentWindow = 7 * 24 * time.Hour

// SpamService classifies analyzed users by profile creation recency
type SpamService struct{}

func NewSpamService() *SpamService {
	return &SpamService{}
}

// Classify partitions the records against the threshold date. Accounts
// created on or after the threshold are flagged as spam; accounts whose
// creation date is unavailable, rate limited or unparseable land in the
// unknown partition. Comparison uses the date-only field to avoid
// time-of-day and timezone ambiguity.
func (s *SpamService) Classify(records []*models.UserRecord, threshold time.Time) *models.ClassificationResult {
	result := &models.ClassificationResult{
		Threshold: threshold,
	}

	for _, record := range records {
		createdDate := record.ProfileCreatedDate
		if createdDate == models.ProfileDateUnavailable || createdDate == models.ProfileDateRateLimited {
			result.Unknown = append(result.Unknown, record)
			continue
		}

		created, err := time.Parse("2006-01-02", createdDate)
		if err != nil {
			result.Unknown = append(result.Unknown, record)
			continue
		}

		if !created.Before(threshold) {
			result.Spam = append(result.Spam, record)
		} else {
			result.Legitimate = append(result.Legitimate, record)
		}
	}

	return result
}

// VeryRecent filters the flagged records down to accounts created within
// the last 7 days. Records with sentinel or unparseable creation dates are
// skipped.
func (s *SpamService) VeryRecent(flagged []*models.UserRecord, now time.Time) []*models.UserRecord {
	cutoff := now.Add(-veryRecentWindow)

	var recent []*models.UserRecord
	for _, record := range flagged {
		createdAt := record.ProfileCreatedAt
		if createdAt == models.ProfileDateUnavailable || createdAt == models.ProfileDateRateLimited {
			continue
		}

		// The displayed field may carry a time component; only the date
		// part is compared.
		created, err := time.Parse("2006-01-02", dateOnly(createdAt))
		if err != nil {
			continue
		}

		if !created.Before(cutoff) {
			recent = append(recent, record)
		}
	}

	return recent
}

func dateOnly(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}
