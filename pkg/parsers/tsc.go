package parsers

import (
	"regexp"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

const IDTypeScript = "tsc"

var (
	// tsc --pretty false
	tscPattern = regexp.MustCompile(`^(.+)\((\d+),(\d+)\):\s+(error|warning)\s+(TS\d+):\s+(.+)$`)
	// tsc --pretty
	tscPrettyPattern = regexp.MustCompile(`^(.+):(\d+):(\d+) - (error|warning) (TS\d+): (.+)$`)
)

// NewTypeScript returns a parser of TypeScript compiler output.
func NewTypeScript() *parser.LineParser {
	return &parser.LineParser{
		Origin: IDTypeScript,
		Rules: []*parser.LineRule{
			{Pattern: tscPattern, Handle: handleTypeScript},
			{Pattern: tscPrettyPattern, Handle: handleTypeScript},
		},
		Prefilter: func(line string) bool {
			return strings.Contains(line, " TS")
		},
	}
}

func handleTypeScript(r *parser.Record, b *issue.Builder) error {
	sev := issue.WarningNormal
	if r.Group(4) == "error" {
		sev = issue.Error
	}
	b.SetFileName(r.Group(1)).
		Set(issue.FieldLineStart, r.Group(2)).
		Set(issue.FieldColumnStart, r.Group(3)).
		SetSeverity(sev).
		SetCategory("typescript").
		SetType(r.Group(5)).
		SetMessage(r.Group(6))
	return nil
}
