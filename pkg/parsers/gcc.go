package parsers

import (
	"regexp"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

const IDGCC = "gcc"

var gccPattern = regexp.MustCompile(`^(.+?):(\d+):(?:(\d+):)? (warning|error|fatal error|note): (.*?)(?: \[(-W[^\]]+)\])?$`)

// NewGCC returns a parser of GCC and Clang diagnostics.
func NewGCC() *parser.LineParser {
	return &parser.LineParser{
		Origin: IDGCC,
		Rules:  []*parser.LineRule{{Pattern: gccPattern, Handle: handleGCC}},
		Prefilter: func(line string) bool {
			return strings.Contains(line, ": ")
		},
	}
}

func handleGCC(r *parser.Record, b *issue.Builder) error {
	var sev issue.Severity
	switch r.Group(4) {
	case "error", "fatal error":
		sev = issue.Error
	case "note":
		sev = issue.WarningLow
	default:
		sev = issue.WarningNormal
	}
	category := r.Group(6)
	if category == "" {
		category = r.Group(4)
	}
	b.SetFileName(r.Group(1)).
		Set(issue.FieldLineStart, r.Group(2)).
		Set(issue.FieldColumnStart, r.Group(3)).
		SetSeverity(sev).
		SetCategory(category).
		SetType(strings.TrimPrefix(r.Group(6), "-W")).
		SetMessage(r.Group(5))
	return nil
}
