package parser

import (
	"regexp"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

// LineRule turns lines matching Pattern into issues.
type LineRule struct {
	Pattern *regexp.Regexp
	Handle  Handler
}

// LineParser parses inputs line by line.
// For each line the first rule whose pattern matches handles it and
// lines no rule matches are ignored.
// Rules can keep state between lines in Record.State, e.g. a module name
// printed above the findings of the module.
type LineParser struct {
	// Origin is set to every issue.
	Origin string
	Rules  []*LineRule
	// Accept defaults to AcceptText.
	Accept AcceptFunc
	// Prefilter is a cheap check run before the patterns. It may be nil.
	Prefilter func(line string) bool
}

func (p *LineParser) Accepts(h *Header) bool {
	return accepts(p.Accept, h)
}

func (p *LineParser) Parse(in *Input) (*issue.Report, error) {
	report := issue.NewReport()
	b := issue.NewBuilder()
	state := map[string]string{}
	dropped, err := in.ScanLines(func(number int, line string) error {
		if p.Prefilter != nil && !p.Prefilter(line) {
			return nil
		}
		for _, rule := range p.Rules {
			m := rule.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			build(report, b, p.Origin, in, &Record{
				Number: number,
				Text:   line,
				Groups: m,
				Names:  rule.Pattern.SubexpNames(),
				State:  state,
			}, rule.Handle)
			return nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	report.AddSkipped(dropped)
	return report, nil
}
