package parsers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

const IDESLint = "eslint"

// ESLint parses the output of eslint --format json.
type ESLint struct{}

func NewESLint() *ESLint {
	return &ESLint{}
}

func (p *ESLint) Accepts(h *parser.Header) bool {
	return h.IsJSON() && !strings.HasPrefix(h.FirstLine(), "{")
}

type eslintResult struct {
	FilePath string          `json:"filePath"`
	Messages []eslintMessage `json:"messages"`
}

type eslintMessage struct {
	RuleID    string `json:"ruleId"`
	Severity  int    `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Fatal     bool   `json:"fatal"`
}

const eslintSeverityError = 2

func (p *ESLint) Parse(in *parser.Input) (*issue.Report, error) {
	text, err := in.ReadAll()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	report := issue.NewReport()
	dec := json.NewDecoder(strings.NewReader(text))
	if _, err := dec.Token(); err != nil {
		if !errors.Is(err, io.EOF) {
			report.AddSkipped(1)
		}
		return report, nil
	}
	b := issue.NewBuilder()
	for dec.More() {
		result := &eslintResult{}
		if err := dec.Decode(result); err != nil {
			report.AddSkipped(1)
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				continue
			}
			return report, nil
		}
		for _, m := range result.Messages {
			is, err := p.build(b, in, result.FilePath, m)
			if err != nil {
				report.AddSkipped(1)
				continue
			}
			report.Add(is)
		}
	}
	return report, nil
}

func (p *ESLint) build(b *issue.Builder, in *parser.Input, file string, m eslintMessage) (issue.Issue, error) {
	sev := issue.WarningNormal
	if m.Severity == eslintSeverityError || m.Fatal {
		sev = issue.Error
	}
	category := "eslint"
	switch {
	case m.Fatal:
		category = "parse"
	case strings.Contains(m.RuleID, "/"):
		category, _, _ = strings.Cut(m.RuleID, "/")
	}
	b.Reset().
		SetOrigin(IDESLint).
		SetFileName(file).
		SetLineStart(m.Line).
		SetLineEnd(m.EndLine).
		SetColumnStart(m.Column).
		SetColumnEnd(m.EndColumn).
		SetSeverity(sev).
		SetCategory(category).
		SetType(m.RuleID).
		SetMessage(m.Message)
	is, err := b.MapFileName(in.Transform).Build()
	if err != nil {
		return issue.Issue{}, fmt.Errorf("build an issue: %w", err)
	}
	return is, nil
}
