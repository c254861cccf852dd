package services

import (
	"context"
	"time"

	"prscope/internal/models"
	"prscope/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalysisService runs the full reaction analysis pipeline for one pull
// request: fetch, aggregate, resolve profiles, build display records.
type AnalysisService struct {
	token              string
	reactionService    *ReactionService
	aggregationService *AggregationService
	profileService     *ProfileService
}

func NewAnalysisService(
	token string,
	reactionService *ReactionService,
	aggregationService *AggregationService,
	profileService *ProfileService,
) *AnalysisService {
	return &AnalysisService{
		token:              token,
		reactionService:    reactionService,
		aggregationService: aggregationService,
		profileService:     profileService,
	}
}

// Analyze fetches and aggregates all reactions on the pull request at prURL
// and resolves each reacting user's profile, reporting per-user progress to
// the supplied sink. Returns ErrMissingToken before any request when no
// token is configured, ErrInvalidURL for a malformed URL, a *FetchError if
// the pull request or any reactions page cannot be fetched, and
// ErrNoReactions when the pull request has no reactions at all.
func (s *AnalysisService) Analyze(ctx context.Context, prURL string, progress ProgressFunc) (*models.AnalysisResult, error) {
	if s.token == "" {
		return nil, ErrMissingToken
	}

	ref := ParsePullRequestURL(prURL)
	if ref == nil {
		return nil, ErrInvalidURL
	}

	runID := uuid.New().String()
	log := logger.WithFields(logrus.Fields{
		"run_id": runID,
		"owner":  ref.Owner,
		"repo":   ref.Repo,
		"pr":     ref.Number,
	})
	log.Info("Starting reaction analysis")

	reactions, err := s.reactionService.FetchReactions(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(reactions) == 0 {
		return nil, ErrNoReactions
	}

	bundles := s.aggregationService.GroupByUser(reactions)
	resolved := s.profileService.ResolveProfiles(ctx, bundles, progress)

	records := make([]*models.UserRecord, 0, len(resolved))
	for _, user := range resolved {
		records = append(records, models.NewUserRecord(user))
	}

	log.WithFields(logrus.Fields{
		"reactions": len(reactions),
		"users":     len(records),
	}).Info("Reaction analysis completed")

	return &models.AnalysisResult{
		RunID:          runID,
		Ref:            ref,
		Records:        records,
		TotalReactions: len(reactions),
		AnalyzedAt:     time.Now(),
	}, nil
}
