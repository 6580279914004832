// Package github creates GitHub API clients.
package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Response           = github.Response
	Client             = github.Client
	PullRequestComment = github.PullRequestComment
)

// PullRequestsService is the part of the Pull Requests API warnings uses.
type PullRequestsService interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *PullRequestComment) (*PullRequestComment, *Response, error)
}

// New returns a client authenticated with token.
// If token is empty, the client isn't authenticated.
// If baseURL isn't empty, the client accesses the GitHub Enterprise Server.
func New(ctx context.Context, token, baseURL string) (*Client, error) {
	client := github.NewClient(getHTTPClientForGitHub(ctx, token))
	if baseURL == "" {
		return client, nil
	}
	c, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return c, nil
}

func Ptr[T any](v T) *T {
	return github.Ptr(v)
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
