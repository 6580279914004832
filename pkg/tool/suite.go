package tool

import (
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

// Suite is a tool combining other tools.
// Its parser runs the parsers of the members in order and concatenates their reports.
type Suite struct {
	id    string
	name  string
	tools []Tool
}

func NewSuite(id, name string, tools ...Tool) *Suite {
	return &Suite{id: id, name: name, tools: tools}
}

func (s *Suite) ID() string      { return s.id }
func (s *Suite) Name() string    { return s.name }
func (s *Suite) Pattern() string { return "" }

func (s *Suite) Tools() []Tool {
	return s.tools
}

func (s *Suite) Help() string {
	ids := make([]string, len(s.tools))
	for i, t := range s.tools {
		ids[i] = t.ID()
	}
	return "Combines " + strings.Join(ids, ", ") + "."
}

// CanScanConsoleLog is true if any member can scan console logs.
func (s *Suite) CanScanConsoleLog() bool {
	for _, t := range s.tools {
		if t.CanScanConsoleLog() {
			return true
		}
	}
	return false
}

func (s *Suite) CreateParser() parser.Parser {
	ps := make([]parser.Parser, len(s.tools))
	for i, t := range s.tools {
		ps[i] = t.CreateParser()
	}
	return parser.NewSuite(ps...)
}

// Description returns the first description the members provide.
func (s *Suite) Description(typ, locale string) string {
	for _, t := range s.tools {
		d, ok := t.(Describer)
		if !ok {
			continue
		}
		if text := d.Description(typ, locale); text != "" {
			return text
		}
	}
	return ""
}
