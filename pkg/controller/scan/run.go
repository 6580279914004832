package scan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

var ErrIssuesFound = errors.New("issues are found")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	switch strings.ToLower(c.param.Format) {
	case "", FormatText, FormatJSON, FormatSARIF:
	default:
		return fmt.Errorf("unsupported format: %s", c.param.Format)
	}
	minSeverity, err := c.minSeverity()
	if err != nil {
		return err
	}
	targets, err := c.searchTargets(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	if len(targets) == 0 {
		logE.Warn("no target file is found")
	}
	report, err := c.parse(ctx, logE, targets)
	if err != nil {
		return err
	}
	report = report.WithFingerprints()
	if c.param.Unique {
		report = report.Unique()
	}
	if minSeverity != 0 {
		report = report.Filter(func(is issue.Issue) bool {
			return is.Severity.AtLeast(minSeverity)
		})
	}
	if err := c.render(report); err != nil {
		return err
	}
	if c.param.Review != nil {
		if err := c.reviewIssues(ctx, logE, report); err != nil {
			logerr.WithError(logE, err).Error("create review comments")
		}
	}
	if c.param.Check && !report.IsEmpty() {
		return ErrIssuesFound
	}
	return nil
}

// minSeverity returns the --min-severity option or min_severity of the configuration file.
func (c *Controller) minSeverity() (issue.Severity, error) {
	if c.param.MinSeverity == "" {
		return c.cfg.Severity(), nil
	}
	sev, err := issue.ParseSeverity(c.param.MinSeverity)
	if err != nil {
		return 0, fmt.Errorf("parse --min-severity: %w", err)
	}
	return sev, nil
}

func (c *Controller) render(report *issue.Report) error {
	switch strings.ToLower(c.param.Format) {
	case FormatJSON:
		return c.outputJSON(report)
	case FormatSARIF:
		return c.outputSARIF(report)
	default:
		c.logger.Output(report)
		return nil
	}
}

// transform returns the function rewriting file names in issues.
func (c *Controller) transform() func(string) string {
	return func(name string) string {
		name = c.cfg.MapPath(name)
		if c.param.StripPrefix != "" {
			name = strings.TrimPrefix(name, c.param.StripPrefix)
		}
		return name
	}
}
