package parser

import (
	"regexp"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

// DocumentParser applies a multi-line pattern to the whole input.
// Each match is one record.
type DocumentParser struct {
	Origin  string
	Pattern *regexp.Regexp
	Handle  Handler
	// Accept defaults to AcceptText.
	Accept AcceptFunc
}

func (p *DocumentParser) Accepts(h *Header) bool {
	return accepts(p.Accept, h)
}

func (p *DocumentParser) Parse(in *Input) (*issue.Report, error) {
	text, err := in.ReadAll()
	if err != nil {
		return nil, err
	}
	report := issue.NewReport()
	b := issue.NewBuilder()
	state := map[string]string{}
	names := p.Pattern.SubexpNames()
	line, offset := 1, 0
	for _, loc := range p.Pattern.FindAllStringSubmatchIndex(text, -1) {
		line += strings.Count(text[offset:loc[0]], "\n")
		offset = loc[0]
		groups := make([]string, len(loc)/2) //nolint:mnd
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		build(report, b, p.Origin, in, &Record{
			Number: line,
			Text:   groups[0],
			Groups: groups,
			Names:  names,
			State:  state,
		}, p.Handle)
	}
	return report, nil
}
