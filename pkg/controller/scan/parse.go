package scan

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

// parse parses targets concurrently and merges the reports in the order of targets.
func (c *Controller) parse(ctx context.Context, logE *logrus.Entry, targets []*Target) (*issue.Report, error) {
	reports := make([]*issue.Report, len(targets))
	eg, ctx := errgroup.WithContext(ctx)
	concurrency := c.param.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	eg.SetLimit(concurrency)
	for i, target := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}
			report, err := c.parseTarget(logE, target)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err //nolint:wrapcheck
	}
	report := issue.NewReport()
	report.AddAll(reports...)
	return report, nil
}

func (c *Controller) parseTarget(logE *logrus.Entry, target *Target) (*issue.Report, error) {
	logE = logE.WithFields(logrus.Fields{
		"input": target.Input.Name(),
		"tool":  target.Tool.ID(),
	})
	p := parser.NewSuite(target.Tool.CreateParser())
	report, err := p.Parse(target.Input)
	if err != nil {
		return nil, fmt.Errorf("parse %s with %s: %w", target.Input.Name(), target.Tool.ID(), err)
	}
	entry := logE.WithField("issues", report.Size())
	if report.Skipped() > 0 {
		entry = entry.WithField("skipped", report.Skipped())
	}
	entry.Debug("parsed an input")
	return report, nil
}
