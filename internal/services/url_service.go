package services

import (
	"regexp"
	"strconv"

	"prscope/internal/models"
)

var pullRequestURLPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)/pull/(\d+)$`)

// ParsePullRequestURL extracts the owner, repository and PR number from a
// pull request URL. Returns nil if the URL does not match
// https://github.com/{owner}/{repo}/pull/{number}.
func ParsePullRequestURL(url string) *models.PullRequestRef {
	match := pullRequestURLPattern.FindStringSubmatch(url)
	if match == nil {
		return nil
	}

	number, err := strconv.Atoi(match[3])
	if err != nil || number <= 0 {
		return nil
	}

	return &models.PullRequestRef{
		Owner:  match[1],
		Repo:   match[2],
		Number: number,
	}
}
