package parsers

import (
	"path"
	"regexp"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

const IDPuppetLint = "puppetlint"

var (
	// puppet-lint --log-format "%{path}:%{line}:%{check}:%{KIND}:%{message}"
	puppetLintPattern = regexp.MustCompile(`^\s*((?:[A-Za-z]:)?[^:]+):(\d+):([^:]+):(WARNING|ERROR):\s*(.*)$`)
	// the default format of puppet-lint: "[path - ]KIND: message on line N"
	puppetLintDefaultPattern = regexp.MustCompile(`^\s*(?:(.+?) - )?(WARNING|ERROR): (.+) on line (\d+)\s*$`)
)

// NewPuppetLint returns a parser of puppet-lint output.
func NewPuppetLint() *parser.LineParser {
	return &parser.LineParser{
		Origin: IDPuppetLint,
		Rules: []*parser.LineRule{
			{Pattern: puppetLintPattern, Handle: handlePuppetLint},
			{Pattern: puppetLintDefaultPattern, Handle: handlePuppetLintDefault},
		},
		Prefilter: func(line string) bool {
			return strings.Contains(line, "WARNING") || strings.Contains(line, "ERROR")
		},
	}
}

func puppetLintSeverity(kind string) issue.Severity {
	if kind == "ERROR" {
		return issue.Error
	}
	return issue.WarningNormal
}

func handlePuppetLint(r *parser.Record, b *issue.Builder) error {
	file := r.Group(1)
	b.SetFileName(file).
		Set(issue.FieldLineStart, r.Group(2)).
		SetCategory(r.Group(3)).
		SetType(r.Group(3)).
		SetSeverity(puppetLintSeverity(r.Group(4))).
		SetMessage(r.Group(5)).
		SetPackageName(puppetClassName(file))
	return nil
}

func handlePuppetLintDefault(r *parser.Record, b *issue.Builder) error {
	file := r.Group(1)
	b.SetFileName(file).
		Set(issue.FieldLineStart, r.Group(4)).
		SetSeverity(puppetLintSeverity(r.Group(2))).
		SetMessage(r.Group(3)).
		SetPackageName(puppetClassName(file))
	return nil
}

// puppetClassName returns the name of the class or defined type a manifest declares
// by the autoloader layout, e.g. modules/nginx/manifests/config/site.pp declares ::nginx::config::site.
// It returns "" if the path isn't in a manifests directory.
func puppetClassName(file string) string {
	file = strings.ReplaceAll(file, `\`, "/")
	elems := strings.Split(file, "/")
	for i := len(elems) - 2; i > 0; i-- {
		if elems[i] != "manifests" {
			continue
		}
		module := elems[i-1]
		rest := strings.TrimSuffix(path.Join(elems[i+1:]...), ".pp")
		if rest == "init" {
			return "::" + module
		}
		return "::" + module + "::" + strings.ReplaceAll(rest, "/", "::")
	}
	return ""
}
