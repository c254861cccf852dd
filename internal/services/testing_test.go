package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a stub GitHub API server and returns a client
// pointed at it
func newTestClient(t *testing.T, handler http.Handler) *github.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client
}

// reactionsPage renders n reaction events as the API would, with ids
// offset so pages don't overlap
func reactionsPage(n, offset int, login string) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(
			`{"id":%d,"content":"+1","created_at":"2024-01-01T00:00:00Z","user":{"login":"%s%d","html_url":"https://github.com/%s%d"}}`,
			offset+i, login, offset+i, login, offset+i))
	}
	return "[" + strings.Join(items, ",") + "]"
}
