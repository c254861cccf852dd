package models

import (
	"sort"
	"strings"
	"time"
)

// ReactionCount is one entry of the reaction distribution
type ReactionCount struct {
	Emoji string
	Count int
}

// AnalysisResult is the output of one pipeline run: the ordered per-user
// records plus run metadata. Classification happens separately so the
// threshold can change without refetching.
type AnalysisResult struct {
	RunID          string
	Ref            *PullRequestRef
	Records        []*UserRecord
	TotalReactions int
	AnalyzedAt     time.Time
}

// ReactionDistribution counts individual reactions per emoji across all
// records, most frequent first
func (r *AnalysisResult) ReactionDistribution() []ReactionCount {
	counts := make(map[string]int)
	for _, record := range r.Records {
		for _, emoji := range strings.Fields(record.Reactions) {
			counts[emoji]++
		}
	}

	distribution := make([]ReactionCount, 0, len(counts))
	for emoji, count := range counts {
		distribution = append(distribution, ReactionCount{Emoji: emoji, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Emoji < distribution[j].Emoji
	})

	return distribution
}
