package scan

import (
	"encoding/json"
	"fmt"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

type jsonOutput struct {
	Issues  *issue.Report `json:"issues"`
	Skipped int           `json:"skipped"`
}

func (c *Controller) outputJSON(report *issue.Report) error {
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&jsonOutput{
		Issues:  report,
		Skipped: report.Skipped(),
	}); err != nil {
		return fmt.Errorf("encode issues as JSON: %w", err)
	}
	return nil
}
