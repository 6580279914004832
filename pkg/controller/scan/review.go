package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/warnings/pkg/github"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

// Review is the pull request on which issues are posted as review comments.
type Review struct {
	RepoOwner   string
	RepoName    string
	PullRequest int
	SHA         string
}

func (r *Review) Valid() bool {
	return r != nil && r.RepoOwner != "" && r.RepoName != "" && r.PullRequest > 0
}

const reviewHeader = "Reported by [warnings](https://github.com/suzuki-shunsuke/warnings)"

func (c *Controller) reviewBody(is issue.Issue) string {
	lines := []string{
		reviewHeader,
		fmt.Sprintf("**%s** %s", is.Severity, ruleID(is)),
	}
	if is.Message != "" {
		lines = append(lines, "", is.Message)
	}
	if desc := c.describe(is); desc != "" {
		lines = append(lines, "", desc)
	}
	return strings.Join(lines, "\n")
}

// reviewIssues posts a review comment per issue which has a line number.
// A failure of one comment doesn't stop the others.
func (c *Controller) reviewIssues(ctx context.Context, logE *logrus.Entry, report *issue.Report) error {
	if !c.param.Review.Valid() || c.pullRequestsService == nil {
		return nil
	}
	failed := 0
	for _, is := range report.Issues() {
		if is.FileName == "" || is.LineStart == 0 {
			continue
		}
		code, err := c.review(ctx, is)
		if err != nil {
			failed++
			logerr.WithError(logE, err).WithFields(logrus.Fields{
				"file":        is.FileName,
				"line":        is.LineStart,
				"status_code": code,
			}).Warn("create a review comment")
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d review comments couldn't be created", failed)
	}
	return nil
}

func (c *Controller) review(ctx context.Context, is issue.Issue) (int, error) {
	cmt := &github.PullRequestComment{
		Body: github.Ptr(c.reviewBody(is)),
		Path: github.Ptr(is.FileName),
		Line: github.Ptr(is.LineStart),
	}
	if is.LineEnd > is.LineStart {
		cmt.StartLine = github.Ptr(is.LineStart)
		cmt.Line = github.Ptr(is.LineEnd)
	}
	if c.param.Review.SHA != "" {
		cmt.CommitID = github.Ptr(c.param.Review.SHA)
	}
	_, resp, err := c.pullRequestsService.CreateComment(ctx, c.param.Review.RepoOwner, c.param.Review.RepoName, c.param.Review.PullRequest, cmt)
	code := 0
	if resp != nil {
		code = resp.StatusCode
	}
	if err != nil {
		return code, fmt.Errorf("create a review comment: %w", err)
	}
	return code, nil
}
