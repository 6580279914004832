package di

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/scan"
)

// populateReviewFromGitHubActionsEnv fills missing review fields from GITHUB_REPOSITORY and the event file.
// The repository in the event is used when GITHUB_REPOSITORY isn't set.
func populateReviewFromGitHubActionsEnv(fs afero.Fs, review *scan.Review, flags *Flags) error {
	if owner, repoName, ok := strings.Cut(flags.GitHubRepository, "/"); ok && owner != "" && repoName != "" {
		if review.RepoOwner == "" {
			review.RepoOwner = owner
		}
		if review.RepoName == "" {
			review.RepoName = repoName
		}
	}
	if flags.GitHubEventPath != "" && !reviewFilled(review) {
		ev := &Event{}
		if err := readEvent(fs, ev, flags.GitHubEventPath); err != nil {
			return err
		}
		ev.Fill(review)
	}
	if review.RepoOwner == "" || review.RepoName == "" {
		return fmt.Errorf("GITHUB_REPOSITORY is not set or invalid: %s", flags.GitHubRepository)
	}
	return nil
}

func reviewFilled(review *scan.Review) bool {
	return review.RepoOwner != "" && review.RepoName != "" && review.PullRequest != 0 && review.SHA != ""
}

// setupReview returns the pull request to review.
// It returns nil if --review isn't set or the pull request can't be determined.
func setupReview(fs afero.Fs, logE *logrus.Entry, flags *Flags) *scan.Review {
	if !flags.Review {
		return nil
	}
	review := &scan.Review{
		RepoOwner:   flags.RepoOwner,
		RepoName:    flags.RepoName,
		PullRequest: flags.PR,
		SHA:         flags.SHA,
	}
	if flags.IsGitHubActions {
		if err := populateReviewFromGitHubActionsEnv(fs, review, flags); err != nil {
			logerr.WithError(logE, err).Error("set review information")
		}
	}
	if !review.Valid() {
		logE.Warn("skip creating reviews because the review information is invalid")
		return nil
	}
	return review
}
