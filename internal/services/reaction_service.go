package services

import (
	"context"
	"fmt"
	"net/http"

	"prscope/internal/models"

	"github.com/google/go-github/v57/github"
)

// reactionsPerPage is the maximum page size the GitHub API allows
const reactionsPerPage = 100

// ReactionService fetches all reactions left on a pull request
type ReactionService struct {
	client *github.Client
}

func NewReactionService(client *github.Client) *ReactionService {
	return &ReactionService{
		client: client,
	}
}

// FetchReactions validates that the pull request exists, then pages through
// the issue reactions endpoint and returns every reaction in fetch order.
// Any failed request aborts the fetch; partial results are never returned.
func (s *ReactionService) FetchReactions(ctx context.Context, ref *models.PullRequestRef) ([]*models.RawReaction, error) {
	if _, resp, err := s.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number); err != nil {
		return nil, &FetchError{Stage: "pull request", StatusCode: responseStatus(resp), Err: err}
	}

	// The typed ReactionsService drops created_at, which aggregation needs,
	// so the endpoint is called directly.
	var allReactions []*models.RawReaction
	for page := 1; ; page++ {
		url := fmt.Sprintf("repos/%s/%s/issues/%d/reactions?per_page=%d&page=%d",
			ref.Owner, ref.Repo, ref.Number, reactionsPerPage, page)
		req, err := s.client.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, &FetchError{Stage: "reactions", Err: err}
		}

		var pageReactions []*models.RawReaction
		resp, err := s.client.Do(ctx, req, &pageReactions)
		if err != nil {
			return nil, &FetchError{Stage: "reactions", StatusCode: responseStatus(resp), Err: err}
		}

		allReactions = append(allReactions, pageReactions...)

		// A short page is the last page. This saves one guaranteed-empty
		// request and assumes the API never returns a short non-final page.
		if len(pageReactions) < reactionsPerPage {
			break
		}
	}

	return allReactions, nil
}

func responseStatus(resp *github.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
