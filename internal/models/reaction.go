package models

import (
	"time"
)

// Reaction content types as reported by the GitHub API
const (
	ReactionThumbsUp   = "+1"
	ReactionThumbsDown = "-1"
	ReactionLaugh      = "laugh"
	ReactionConfused   = "confused"
	ReactionHeart      = "heart"
	ReactionHooray     = "hooray"
	ReactionRocket     = "rocket"
	ReactionEyes       = "eyes"
)

var reactionEmojis = map[string]string{
	ReactionThumbsUp:   "👍",
	ReactionThumbsDown: "👎",
	ReactionLaugh:      "😄",
	ReactionConfused:   "😕",
	ReactionHeart:      "❤️",
	ReactionHooray:     "🎉",
	ReactionRocket:     "🚀",
	ReactionEyes:       "👀",
}

// EmojiForReaction converts a GitHub reaction content type to its emoji.
// Unknown content types are returned as-is.
func EmojiForReaction(content string) string {
	if emoji, ok := reactionEmojis[content]; ok {
		return emoji
	}
	return content
}

// ReactionUser is the subset of the reacting user's data the pipeline needs
type ReactionUser struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// RawReaction is a single reaction event on a pull request, as returned by
// the issue reactions endpoint
type RawReaction struct {
	ID        int64         `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"created_at"`
	User      *ReactionUser `json:"user"`
}

// PullRequestRef identifies one pull request
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}
