package services

import (
	"context"
	"errors"
	"net/http"

	"prscope/internal/models"
	"prscope/pkg/logger"

	"github.com/google/go-github/v57/github"
)

// ProgressFunc is called after each resolved user so the caller can render
// an incremental progress indicator. index is 1-based.
type ProgressFunc func(index, total int, login string)

// ProfileService resolves the profile creation date for each reacting user
type ProfileService struct {
	client *github.Client
}

func NewProfileService(client *github.Client) *ProfileService {
	return &ProfileService{
		client: client,
	}
}

// ResolveProfiles issues exactly one profile lookup per bundle, in bundle
// order. Lookup failures never abort the run: a 403 marks the user as rate
// limited, anything else marks the creation date unknown. No retries.
func (s *ProfileService) ResolveProfiles(ctx context.Context, bundles []*models.UserReactionBundle, progress ProgressFunc) []*models.ResolvedUser {
	resolved := make([]*models.ResolvedUser, 0, len(bundles))
	total := len(bundles)

	for i, bundle := range bundles {
		user := &models.ResolvedUser{
			UserReactionBundle: bundle,
			Status:             models.ProfileUnknown,
		}

		profile, resp, err := s.client.Users.Get(ctx, bundle.Login)
		switch {
		case err == nil && profile.CreatedAt != nil:
			user.Status = models.ProfileResolved
			user.ProfileCreatedAt = profile.CreatedAt.Time
		case isRateLimited(err, resp):
			user.Status = models.ProfileRateLimited
			logger.WithField("login", bundle.Login).
				Warn("Rate limit exceeded while fetching user profile, creation date will be missing")
		default:
			if err != nil {
				logger.WithField("login", bundle.Login).WithError(err).
					Debug("Failed to fetch user profile")
			}
		}

		resolved = append(resolved, user)

		if progress != nil {
			progress(i+1, total, bundle.Login)
		}
	}

	return resolved
}

func isRateLimited(err error, resp *github.Response) bool {
	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr) {
		return true
	}
	return resp != nil && resp.StatusCode == http.StatusForbidden
}
