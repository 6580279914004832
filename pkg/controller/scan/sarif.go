package scan

import (
	"encoding/json"
	"fmt"

	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/sarif"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

const fingerprintKey = "warnings/v1"

// outputSARIF outputs issues in SARIF format to stdout.
func (c *Controller) outputSARIF(report *issue.Report) error {
	rules, results := c.buildSARIF(report)
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "warnings",
						InformationURI: "https://github.com/suzuki-shunsuke/warnings",
						Rules:          rules,
					},
				},
				Results: results,
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func (c *Controller) locale() string {
	if c.param.Locale != "" {
		return c.param.Locale
	}
	if c.cfg.Locale != "" {
		return c.cfg.Locale
	}
	return description.DefaultLocale
}

// ruleID identifies a SARIF rule by the tool and the issue type.
func ruleID(is issue.Issue) string {
	typ := is.Type
	if typ == "" {
		typ = is.Category
	}
	if typ == "" {
		return is.Origin
	}
	if is.Origin == "" {
		return typ
	}
	return is.Origin + "/" + typ
}

func level(sev issue.Severity) string {
	switch sev {
	case issue.Error:
		return "error"
	case issue.WarningLow:
		return "note"
	default:
		return "warning"
	}
}

func (c *Controller) describe(is issue.Issue) string {
	if is.Type == "" {
		return ""
	}
	t, err := c.registry.Get(is.Origin)
	if err != nil {
		return ""
	}
	d, ok := t.(tool.Describer)
	if !ok {
		return ""
	}
	return d.Description(is.Type, c.locale())
}

func (c *Controller) buildSARIF(report *issue.Report) ([]sarif.Rule, []sarif.Result) {
	rules := []sarif.Rule{}
	indexes := map[string]int{}
	results := make([]sarif.Result, 0, report.Size())
	for _, is := range report.Issues() {
		id := ruleID(is)
		idx, ok := indexes[id]
		if !ok {
			rule := sarif.Rule{
				ID:               id,
				Name:             is.Type,
				ShortDescription: sarif.Message{Text: id},
			}
			if is.Category != "" {
				rule.Properties = map[string]any{"category": is.Category}
			}
			if desc := c.describe(is); desc != "" {
				rule.FullDescription = &sarif.Message{Text: desc}
			}
			idx = len(rules)
			indexes[id] = idx
			rules = append(rules, rule)
		}
		result := sarif.Result{
			RuleID:    id,
			RuleIndex: idx,
			Level:     level(is.Severity),
			Message:   sarif.Message{Text: is.Message},
		}
		if is.Fingerprint != "" {
			result.PartialFingerprints = map[string]string{fingerprintKey: is.Fingerprint}
		}
		if is.FileName != "" {
			loc := sarif.Location{
				PhysicalLocation: sarif.PhysicalLocation{
					ArtifactLocation: sarif.ArtifactLocation{URI: is.FileName},
				},
			}
			if is.LineStart > 0 {
				loc.PhysicalLocation.Region = &sarif.Region{
					StartLine:   is.LineStart,
					StartColumn: is.ColumnStart,
					EndLine:     is.LineEnd,
					EndColumn:   is.ColumnEnd,
				}
			}
			result.Locations = []sarif.Location{loc}
		}
		results = append(results, result)
	}
	return rules, results
}
