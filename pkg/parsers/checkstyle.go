package parsers

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/priority"
)

const IDCheckStyle = "checkstyle"

const checkStyleIgnore = "ignore"

// CheckStyle parses reports in the Checkstyle XML format.
// Besides Checkstyle itself many linters (ESLint, golangci-lint, ktlint) can write this format.
type CheckStyle struct {
	mapper priority.Mapper
}

func NewCheckStyle() *CheckStyle {
	return &CheckStyle{
		mapper: priority.NewLabelMapper(map[string]issue.Severity{
			"error":   issue.Error,
			"warning": issue.WarningNormal,
			"info":    issue.WarningLow,
		}, issue.WarningNormal),
	}
}

func (p *CheckStyle) Accepts(h *parser.Header) bool {
	return h.IsXML() && h.Contains("<checkstyle")
}

type checkStyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkStyleError `xml:"error"`
}

type checkStyleError struct {
	Line     string `xml:"line,attr"`
	Column   string `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

func (p *CheckStyle) Parse(in *parser.Input) (*issue.Report, error) {
	report := issue.NewReport()
	b := issue.NewBuilder()
	if err := walkXML(in, report, func(dec *xml.Decoder, se xml.StartElement) error {
		if se.Name.Local != "file" {
			return nil
		}
		file := &checkStyleFile{}
		if err := dec.DecodeElement(file, &se); err != nil {
			return fmt.Errorf("decode file: %w", err)
		}
		for _, e := range file.Errors {
			if strings.EqualFold(e.Severity, checkStyleIgnore) {
				continue
			}
			category, typ := checkStyleSource(e.Source)
			b.Reset().
				SetOrigin(IDCheckStyle).
				SetFileName(file.Name).
				Set(issue.FieldLineStart, e.Line).
				Set(issue.FieldColumnStart, e.Column).
				SetSeverity(p.mapper.Severity(priority.Signal{Label: e.Severity})).
				SetCategory(category).
				SetType(typ).
				SetMessage(e.Message)
			is, err := b.MapFileName(in.Transform).Build()
			if err != nil {
				report.AddSkipped(1)
				continue
			}
			report.Add(is)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return report, nil
}

// checkStyleSource splits a check name like
// com.puppycrawl.tools.checkstyle.checks.javadoc.JavadocPackageCheck into the category "javadoc" and the type "JavadocPackage".
func checkStyleSource(source string) (string, string) {
	elems := strings.Split(source, ".")
	typ := strings.TrimSuffix(elems[len(elems)-1], "Check")
	if len(elems) < 2 { //nolint:mnd
		return "", typ
	}
	return elems[len(elems)-2], typ
}
