package services

import (
	"context"

	"prscope/internal/models"
	"prscope/pkg/logger"

	"github.com/google/go-github/v57/github"
)

// RateLimitService reads an advisory snapshot of the core API quota
type RateLimitService struct {
	client *github.Client
}

func NewRateLimitService(client *github.Client) *RateLimitService {
	return &RateLimitService{
		client: client,
	}
}

// Check returns the current core quota, or nil when the quota endpoint
// cannot be read. It never returns an error; the quota display is advisory
// only.
func (s *RateLimitService) Check(ctx context.Context) *models.RateLimitStatus {
	limits, _, err := s.client.RateLimit.Get(ctx)
	if err != nil || limits == nil || limits.Core == nil {
		if err != nil {
			logger.WithError(err).Debug("Failed to check rate limit")
		}
		return nil
	}

	return &models.RateLimitStatus{
		Remaining: limits.Core.Remaining,
		Limit:     limits.Core.Limit,
		ResetAt:   limits.Core.Reset.Time,
	}
}
