package services

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken means no GitHub token was configured. Checked before
	// any request is made.
	ErrMissingToken = errors.New("GitHub token not configured, set GITHUB_TOKEN in your environment or .env file")

	// ErrInvalidURL means the input did not match the expected pull request
	// URL format https://github.com/owner/repo/pull/123
	ErrInvalidURL = errors.New("invalid GitHub pull request URL")

	// ErrNoReactions means the pull request exists but has no reactions.
	// Surfaced as a warning, not a failure.
	ErrNoReactions = errors.New("no reactions found for this pull request")
)

// FetchError is a failed request during the fatal stages of the pipeline
// (pull request detail or a reactions page). StatusCode is 0 when the
// request never produced a response.
type FetchError struct {
	Stage      string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("error fetching %s: status %d", e.Stage, e.StatusCode)
	}
	return fmt.Sprintf("error fetching %s: %v", e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
