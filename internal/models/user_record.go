package models

import (
	"strings"
	"time"
)

// Display values used when a profile creation date could not be resolved
const (
	ProfileDateUnavailable = "N/A"
	ProfileDateRateLimited = "Rate Limited"
)

// ProfileStatus is the outcome of a single profile lookup
type ProfileStatus string

const (
	ProfileResolved    ProfileStatus = "resolved"
	ProfileUnknown     ProfileStatus = "unknown"
	ProfileRateLimited ProfileStatus = "rate_limited"
)

// ReactionEntry is one reaction within a user's bundle
type ReactionEntry struct {
	Content   string
	CreatedAt time.Time
}

// UserReactionBundle is the aggregated view of all reactions left by one
// user on a pull request. FirstReactionAt is the minimum CreatedAt across
// the bundle's reactions.
type UserReactionBundle struct {
	Login           string
	ProfileURL      string
	Reactions       []ReactionEntry
	FirstReactionAt time.Time
}

// ResolvedUser is a bundle augmented with the result of the profile lookup.
// ProfileCreatedAt is only meaningful when Status is ProfileResolved.
type ResolvedUser struct {
	*UserReactionBundle
	Status           ProfileStatus
	ProfileCreatedAt time.Time
}

// UserRecord is the per-user row handed to the presentation layer. Creation
// date fields are preformatted; unresolved profiles carry the "N/A" or
// "Rate Limited" display value in both.
type UserRecord struct {
	Reactions          string `json:"reactions"`
	ReactionCount      int    `json:"reaction_count"`
	Login              string `json:"login"`
	ProfileURL         string `json:"profile_url"`
	FirstReactionAt    string `json:"first_reaction_at"`
	ProfileCreatedAt   string `json:"profile_created_at"`
	ProfileCreatedDate string `json:"profile_created_date"`
}

// NewUserRecord builds the display record for one resolved user
func NewUserRecord(user *ResolvedUser) *UserRecord {
	emojis := make([]string, 0, len(user.Reactions))
	for _, r := range user.Reactions {
		emojis = append(emojis, EmojiForReaction(r.Content))
	}

	record := &UserRecord{
		Reactions:       strings.Join(emojis, " "),
		ReactionCount:   len(user.Reactions),
		Login:           user.Login,
		ProfileURL:      user.ProfileURL,
		FirstReactionAt: user.FirstReactionAt.UTC().Format("2006-01-02 15:04:05"),
	}

	switch user.Status {
	case ProfileResolved:
		record.ProfileCreatedAt = user.ProfileCreatedAt.UTC().Format("2006-01-02 15:04:05")
		record.ProfileCreatedDate = user.ProfileCreatedAt.UTC().Format("2006-01-02")
	case ProfileRateLimited:
		record.ProfileCreatedAt = ProfileDateRateLimited
		record.ProfileCreatedDate = ProfileDateRateLimited
	default:
		record.ProfileCreatedAt = ProfileDateUnavailable
		record.ProfileCreatedDate = ProfileDateUnavailable
	}

	return record
}
