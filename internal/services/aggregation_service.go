package services

import (
	"prscope/internal/models"
)

// AggregationService groups raw reaction events by the acting user
type AggregationService struct{}

func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// GroupByUser builds one bundle per distinct login. Bundles are returned in
// first-appearance order, reactions stay in fetch order, and FirstReactionAt
// tracks the earliest reaction timestamp for each user.
func (s *AggregationService) GroupByUser(reactions []*models.RawReaction) []*models.UserReactionBundle {
	bundlesByLogin := make(map[string]*models.UserReactionBundle)
	var bundles []*models.UserReactionBundle

	for _, reaction := range reactions {
		if reaction.User == nil {
			continue
		}

		bundle, ok := bundlesByLogin[reaction.User.Login]
		if !ok {
			bundle = &models.UserReactionBundle{
				Login:           reaction.User.Login,
				ProfileURL:      reaction.User.HTMLURL,
				FirstReactionAt: reaction.CreatedAt,
			}
			bundlesByLogin[reaction.User.Login] = bundle
			bundles = append(bundles, bundle)
		}

		bundle.Reactions = append(bundle.Reactions, models.ReactionEntry{
			Content:   reaction.Content,
			CreatedAt: reaction.CreatedAt,
		})

		if reaction.CreatedAt.Before(bundle.FirstReactionAt) {
			bundle.FirstReactionAt = reaction.CreatedAt
		}
	}

	return bundles
}
