package services

import (
	"testing"
	"time"

	"prscope/internal/models"

	"github.com/stretchr/testify/assert"
)

func rawReaction(login, content string, createdAt time.Time) *models.RawReaction {
	return &models.RawReaction{
		Content:   content,
		CreatedAt: createdAt,
		User: &models.ReactionUser{
			Login:   login,
			HTMLURL: "https://github.com/" + login,
		},
	}
}

func TestGroupByUser(t *testing.T) {
	service := NewAggregationService()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Empty input", func(t *testing.T) {
		bundles := service.GroupByUser(nil)
		assert.Empty(t, bundles)
	})

	t.Run("Single reaction", func(t *testing.T) {
		bundles := service.GroupByUser([]*models.RawReaction{
			rawReaction("alice", models.ReactionThumbsUp, base),
		})

		assert.Len(t, bundles, 1)
		assert.Equal(t, "alice", bundles[0].Login)
		assert.Equal(t, "https://github.com/alice", bundles[0].ProfileURL)
		assert.Len(t, bundles[0].Reactions, 1)
		assert.Equal(t, base, bundles[0].FirstReactionAt)
	})

	t.Run("One bundle per distinct login", func(t *testing.T) {
		// k reactions from the same login interleaved with other logins
		reactions := []*models.RawReaction{
			rawReaction("alice", models.ReactionThumbsUp, base),
			rawReaction("bob", models.ReactionRocket, base.Add(time.Hour)),
			rawReaction("alice", models.ReactionHeart, base.Add(2*time.Hour)),
			rawReaction("carol", models.ReactionEyes, base.Add(3*time.Hour)),
			rawReaction("alice", models.ReactionLaugh, base.Add(4*time.Hour)),
		}

		bundles := service.GroupByUser(reactions)

		assert.Len(t, bundles, 3)
		assert.Equal(t, "alice", bundles[0].Login)
		assert.Len(t, bundles[0].Reactions, 3)
	})

	t.Run("Reaction count is preserved", func(t *testing.T) {
		reactions := []*models.RawReaction{
			rawReaction("alice", models.ReactionThumbsUp, base),
			rawReaction("alice", models.ReactionHeart, base),
			rawReaction("bob", models.ReactionRocket, base),
			rawReaction("carol", models.ReactionEyes, base),
			rawReaction("bob", models.ReactionThumbsDown, base),
		}

		bundles := service.GroupByUser(reactions)

		total := 0
		for _, bundle := range bundles {
			total += len(bundle.Reactions)
		}
		assert.Equal(t, len(reactions), total)
	})

	t.Run("Bundles keep first-appearance order", func(t *testing.T) {
		reactions := []*models.RawReaction{
			rawReaction("carol", models.ReactionEyes, base),
			rawReaction("alice", models.ReactionThumbsUp, base),
			rawReaction("bob", models.ReactionRocket, base),
			rawReaction("alice", models.ReactionHeart, base),
		}

		bundles := service.GroupByUser(reactions)

		logins := make([]string, 0, len(bundles))
		for _, bundle := range bundles {
			logins = append(logins, bundle.Login)
		}
		assert.Equal(t, []string{"carol", "alice", "bob"}, logins)
	})

	t.Run("FirstReactionAt is the minimum timestamp", func(t *testing.T) {
		t1 := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
		t2 := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)
		t3 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		// T1 > T2 > T3, fed in arbitrary order
		reactions := []*models.RawReaction{
			rawReaction("alice", models.ReactionThumbsUp, t1),
			rawReaction("alice", models.ReactionHeart, t3),
			rawReaction("alice", models.ReactionRocket, t2),
		}

		bundles := service.GroupByUser(reactions)

		assert.Len(t, bundles, 1)
		assert.Equal(t, t3, bundles[0].FirstReactionAt)
	})

	t.Run("Reactions without a user are skipped", func(t *testing.T) {
		reactions := []*models.RawReaction{
			{Content: models.ReactionThumbsUp, CreatedAt: base},
			rawReaction("alice", models.ReactionHeart, base),
		}

		bundles := service.GroupByUser(reactions)

		assert.Len(t, bundles, 1)
		assert.Equal(t, "alice", bundles[0].Login)
	})
}
