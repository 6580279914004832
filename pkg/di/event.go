package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/scan"
)

// Event is the part of a GitHub Actions event payload (GITHUB_EVENT_PATH)
// which identifies the pull request to review.
type Event struct {
	PullRequest *PullRequest `json:"pull_request"`
	Issue       *Issue       `json:"issue"`
	Repository  *Repository  `json:"repository"`
}

// RepoOwner returns the login of the repository owner or "".
func (e *Event) RepoOwner() string {
	if e != nil && e.Repository != nil && e.Repository.Owner != nil {
		return e.Repository.Owner.Login
	}
	return ""
}

// RepoName returns the repository name or "".
func (e *Event) RepoName() string {
	if e != nil && e.Repository != nil {
		return e.Repository.Name
	}
	return ""
}

// PRNumber returns the number of the pull request.
// issue_comment events carry it as the issue number.
func (e *Event) PRNumber() int {
	if e == nil {
		return 0
	}
	if e.PullRequest != nil {
		return e.PullRequest.Number
	}
	if e.Issue != nil {
		return e.Issue.Number
	}
	return 0
}

// SHA returns the head commit of the pull request, which review comments are attached to.
func (e *Event) SHA() string {
	if e == nil {
		return ""
	}
	if e.PullRequest != nil && e.PullRequest.Head != nil {
		return e.PullRequest.Head.SHA
	}
	return ""
}

// Fill sets the empty fields of review. Fields given by command line options are kept.
func (e *Event) Fill(review *scan.Review) {
	if review.RepoOwner == "" {
		review.RepoOwner = e.RepoOwner()
	}
	if review.RepoName == "" {
		review.RepoName = e.RepoName()
	}
	if review.PullRequest == 0 {
		review.PullRequest = e.PRNumber()
	}
	if review.SHA == "" {
		review.SHA = e.SHA()
	}
}

// Issue is the issue of an issue_comment event. Its number is the pull request number.
type Issue struct {
	Number int `json:"number"`
}

// PullRequest is the pull request of a pull_request event.
type PullRequest struct {
	Number int   `json:"number"`
	Head   *Head `json:"head"`
}

// Repository is the repository the workflow runs in.
type Repository struct {
	Owner *Owner `json:"owner"`
	Name  string `json:"name"`
}

// Owner is the user or organization owning the repository.
type Owner struct {
	Login string `json:"login"`
}

// Head is the head branch of the pull request.
type Head struct {
	SHA string `json:"sha"`
}

func readEvent(fs afero.Fs, ev *Event, eventPath string) error {
	event, err := fs.Open(eventPath)
	if err != nil {
		return fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer event.Close()
	if err := json.NewDecoder(event).Decode(ev); err != nil {
		return fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return nil
}
