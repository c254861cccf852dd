package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"prscope/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReactions(t *testing.T) {
	ref := &models.PullRequestRef{Owner: "acme", Repo: "widgets", Number: 42}

	t.Run("Paginates until a short page", func(t *testing.T) {
		pageSizes := []int{100, 100, 37}
		pageRequests := 0

		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"number":42}`)
		})
		mux.HandleFunc("/repos/acme/widgets/issues/42/reactions", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "100", r.URL.Query().Get("per_page"))
			pageRequests++
			fmt.Fprint(w, reactionsPage(pageSizes[pageRequests-1], (pageRequests-1)*100, "user"))
		})

		service := NewReactionService(newTestClient(t, mux))
		reactions, err := service.FetchReactions(context.Background(), ref)

		require.NoError(t, err)
		assert.Len(t, reactions, 237)
		assert.Equal(t, 3, pageRequests)
	})

	t.Run("Empty first page means no reactions", func(t *testing.T) {
		pageRequests := 0

		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"number":42}`)
		})
		mux.HandleFunc("/repos/acme/widgets/issues/42/reactions", func(w http.ResponseWriter, r *http.Request) {
			pageRequests++
			fmt.Fprint(w, `[]`)
		})

		service := NewReactionService(newTestClient(t, mux))
		reactions, err := service.FetchReactions(context.Background(), ref)

		require.NoError(t, err)
		assert.Empty(t, reactions)
		assert.Equal(t, 1, pageRequests)
	})

	t.Run("Reaction fields are decoded", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"number":42}`)
		})
		mux.HandleFunc("/repos/acme/widgets/issues/42/reactions", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":7,"content":"rocket","created_at":"2024-06-01T12:30:00Z","user":{"login":"bob","html_url":"https://github.com/bob"}}]`)
		})

		service := NewReactionService(newTestClient(t, mux))
		reactions, err := service.FetchReactions(context.Background(), ref)

		require.NoError(t, err)
		require.Len(t, reactions, 1)
		assert.Equal(t, models.ReactionRocket, reactions[0].Content)
		assert.Equal(t, "bob", reactions[0].User.Login)
		assert.Equal(t, "2024-06-01T12:30:00Z", reactions[0].CreatedAt.Format("2006-01-02T15:04:05Z"))
	})

	t.Run("Missing pull request is a fetch error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		})

		service := NewReactionService(newTestClient(t, mux))
		reactions, err := service.FetchReactions(context.Background(), ref)

		assert.Nil(t, reactions)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "pull request", fetchErr.Stage)
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		assert.Contains(t, fetchErr.Error(), "404")
	})

	t.Run("Failed reactions page discards everything", func(t *testing.T) {
		pageRequests := 0

		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widgets/pulls/42", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"number":42}`)
		})
		mux.HandleFunc("/repos/acme/widgets/issues/42/reactions", func(w http.ResponseWriter, r *http.Request) {
			pageRequests++
			if pageRequests == 1 {
				fmt.Fprint(w, reactionsPage(100, 0, "user"))
				return
			}
			http.Error(w, `{"message":"Server Error"}`, http.StatusInternalServerError)
		})

		service := NewReactionService(newTestClient(t, mux))
		reactions, err := service.FetchReactions(context.Background(), ref)

		assert.Nil(t, reactions)
		var fetchErr *FetchError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, "reactions", fetchErr.Stage)
		assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
	})
}
