package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/priority"
)

const IDPylint = "pylint"

var (
	pylintModulePattern = regexp.MustCompile(`^\*{13} Module (\S+)`)
	// path:line:column: C0114: message (symbol)
	pylintPattern = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([CRWEFI]\d{4}): (.*?)(?: \(([a-z0-9-]+)\))?$`)
	// the parseable output format: path:line: [C0111(missing-docstring), object] message
	pylintParseablePattern = regexp.MustCompile(`^(.+?):(\d+): \[([CRWEFI]\d{4})(?:\(([a-z0-9-]+)\))?(?:, [^\]]*)?\] (.*)$`)
)

const stateModule = "module"

var pylintCategories = map[byte]string{ //nolint:gochecknoglobals
	'C': "convention",
	'R': "refactor",
	'W': "warning",
	'E': "error",
	'F': "fatal",
	'I': "info",
}

// PylintLabels maps the first letter of pylint message ids to severities.
func PylintLabels() map[string]issue.Severity {
	return map[string]issue.Severity{
		"F": issue.Error,
		"E": issue.WarningHigh,
		"W": issue.WarningNormal,
		"R": issue.WarningLow,
		"C": issue.WarningLow,
		"I": issue.WarningLow,
	}
}

// NewPylint returns a parser of pylint text output.
// Findings get the name of the module printed in the preceding "Module" header.
func NewPylint() *parser.LineParser {
	p := &pylint{
		mapper: priority.NewLabelMapper(PylintLabels(), issue.WarningNormal),
	}
	return &parser.LineParser{
		Origin: IDPylint,
		Rules: []*parser.LineRule{
			{Pattern: pylintModulePattern, Handle: p.handleModule},
			{Pattern: pylintPattern, Handle: p.handle},
			{Pattern: pylintParseablePattern, Handle: p.handleParseable},
		},
	}
}

type pylint struct {
	mapper priority.Mapper
}

func (p *pylint) handleModule(r *parser.Record, _ *issue.Builder) error {
	r.State[stateModule] = r.Group(1)
	return parser.ErrNoIssue
}

func (p *pylint) set(r *parser.Record, b *issue.Builder, file, line, id, symbol, msg string) {
	typ := symbol
	if typ == "" {
		typ = id
	}
	module := r.State[stateModule]
	if module == "" {
		module = PylintModule(file)
	}
	b.SetFileName(file).
		Set(issue.FieldLineStart, line).
		SetSeverity(p.mapper.Severity(priority.Signal{Label: id[:1]})).
		SetCategory(pylintCategories[id[0]]).
		SetType(typ).
		SetMessage(msg).
		SetPackageName(module)
}

func (p *pylint) handle(r *parser.Record, b *issue.Builder) error {
	p.set(r, b, r.Group(1), r.Group(2), r.Group(4), r.Group(6), r.Group(5))
	// pylint columns are 0-based
	col, err := strconv.Atoi(r.Group(3))
	if err != nil {
		return fmt.Errorf("parse a column: %w", err)
	}
	b.SetColumnStart(col + 1)
	return nil
}

func (p *pylint) handleParseable(r *parser.Record, b *issue.Builder) error {
	p.set(r, b, r.Group(1), r.Group(2), r.Group(3), r.Group(4), r.Group(5))
	return nil
}

// PylintModule returns the module name of a python file path, e.g. pkg/sub/mod.py is pkg.sub.mod.
func PylintModule(file string) string {
	file = strings.ReplaceAll(file, `\`, "/")
	return strings.ReplaceAll(strings.TrimSuffix(strings.TrimSuffix(file, ".py"), "/__init__"), "/", ".")
}
