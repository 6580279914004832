package parser

import (
	"fmt"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
)

// Suite runs several parsers over the same input and concatenates their
// reports in the order of the parsers. A Suite is a Parser itself, so suites nest.
type Suite struct {
	parsers []Parser
}

func NewSuite(parsers ...Parser) *Suite {
	return &Suite{parsers: parsers}
}

func (s *Suite) Parsers() []Parser {
	return s.parsers
}

// Accepts reports whether any parser accepts the input.
func (s *Suite) Accepts(h *Header) bool {
	for _, p := range s.parsers {
		if p.Accepts(h) {
			return true
		}
	}
	return false
}

// Parse returns the concatenation of the reports of every parser accepting the input.
// An empty suite returns an empty report without reading the input.
// The first parser error aborts the aggregation and is returned.
func (s *Suite) Parse(in *Input) (*issue.Report, error) {
	report := issue.NewReport()
	if len(s.parsers) == 0 {
		return report, nil
	}
	h, err := ReadHeader(in)
	if err != nil {
		return nil, err
	}
	for i, p := range s.parsers {
		if !p.Accepts(h) {
			continue
		}
		r, err := p.Parse(in)
		if err != nil {
			return nil, fmt.Errorf("parse %s with the parser %d: %w", in.Name(), i, err)
		}
		report.AddAll(r)
	}
	return report, nil
}
