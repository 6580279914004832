package parser_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

var simplePattern = regexp.MustCompile(`^(.+):(\d+): (warning|error): (.*)$`)

func simpleHandler(r *parser.Record, b *issue.Builder) error {
	sev := issue.WarningNormal
	if r.Group(3) == "error" {
		sev = issue.Error
	}
	b.SetFileName(r.Group(1)).
		Set(issue.FieldLineStart, r.Group(2)).
		SetSeverity(sev).
		SetMessage(r.Group(4))
	return nil
}

func TestLineParser_Parse(t *testing.T) {
	t.Parallel()
	p := &parser.LineParser{
		Origin: "simple",
		Rules:  []*parser.LineRule{{Pattern: simplePattern, Handle: simpleHandler}},
	}
	in := &parser.Input{
		Source: parser.StringSource("build.log", strings.Join([]string{
			"make: Entering directory '/build/ws'",
			"/build/ws/a.c:3: warning: unused variable",
			"garbage output not matching any rule",
			"/build/ws/b.c:99999999999999999999999: error: too large",
			"/build/ws/b.c:7: error: missing semicolon",
		}, "\n")),
		Transform: func(s string) string {
			return strings.TrimPrefix(s, "/build/ws/")
		},
	}
	report, err := p.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	exp := []issue.Issue{
		{FileName: "a.c", LineStart: 3, LineEnd: 3, Severity: issue.WarningNormal, Message: "unused variable", Origin: "simple"},
		{FileName: "b.c", LineStart: 7, LineEnd: 7, Severity: issue.Error, Message: "missing semicolon", Origin: "simple"},
	}
	if diff := cmp.Diff(exp, report.Issues()); diff != "" {
		t.Fatal(diff)
	}
	if report.Skipped() != 1 {
		t.Fatalf("the line with an invalid number must be skipped and counted: %d", report.Skipped())
	}
}

func TestLineParser_state(t *testing.T) {
	t.Parallel()
	p := &parser.LineParser{
		Origin: "grouped",
		Rules: []*parser.LineRule{
			{
				Pattern: regexp.MustCompile(`^== (?P<module>\S+) ==$`),
				Handle: func(r *parser.Record, _ *issue.Builder) error {
					r.State["module"] = r.Named("module")
					return parser.ErrNoIssue
				},
			},
			{
				Pattern: regexp.MustCompile(`^(\d+): (.*)$`),
				Handle: func(r *parser.Record, b *issue.Builder) error {
					b.SetModuleName(r.State["module"]).Set(issue.FieldLineStart, r.Group(1)).SetMessage(r.Group(2))
					return nil
				},
			},
		},
		Prefilter: func(line string) bool {
			return !strings.HasPrefix(line, "#")
		},
	}
	in := &parser.Input{Source: parser.StringSource("out", "== core ==\n1: a\n# 2: ignored\n== web ==\n3: b\n")}
	report, err := p.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	exp := []issue.Issue{
		{LineStart: 1, LineEnd: 1, Severity: issue.WarningNormal, Message: "a", ModuleName: "core", Origin: "grouped"},
		{LineStart: 3, LineEnd: 3, Severity: issue.WarningNormal, Message: "b", ModuleName: "web", Origin: "grouped"},
	}
	if diff := cmp.Diff(exp, report.Issues()); diff != "" {
		t.Fatal(diff)
	}
	if report.Skipped() != 0 {
		t.Fatalf("state lines must not be counted as skipped: %d", report.Skipped())
	}
}

func TestLineParser_Accepts(t *testing.T) {
	t.Parallel()
	p := &parser.LineParser{}
	if !p.Accepts(&parser.Header{Path: "build.log", Lines: []string{"a.c:1: warning: x"}}) {
		t.Fatal("a text input must be accepted by default")
	}
	if p.Accepts(&parser.Header{Path: "report.xml", Lines: []string{"<?xml?>"}}) {
		t.Fatal("an XML document must not be accepted by default")
	}
}

func TestDocumentParser_Parse(t *testing.T) {
	t.Parallel()
	p := &parser.DocumentParser{
		Origin:  "block",
		Pattern: regexp.MustCompile(`(?m)^BEGIN (\S+)\n(.*)\nEND$`),
		Handle: func(r *parser.Record, b *issue.Builder) error {
			b.SetFileName(r.Group(1)).SetLineStart(r.Number).SetMessage(r.Group(2))
			return nil
		},
	}
	text := "noise\nBEGIN a.txt\nfirst message\nEND\nnoise\nnoise\nBEGIN b.txt\nsecond message\nEND\n"
	report, err := p.Parse(&parser.Input{Source: parser.StringSource("doc", text)})
	if err != nil {
		t.Fatal(err)
	}
	exp := []issue.Issue{
		{FileName: "a.txt", LineStart: 2, LineEnd: 2, Severity: issue.WarningNormal, Message: "first message", Origin: "block"},
		{FileName: "b.txt", LineStart: 7, LineEnd: 7, Severity: issue.WarningNormal, Message: "second message", Origin: "block"},
	}
	if diff := cmp.Diff(exp, report.Issues()); diff != "" {
		t.Fatal(diff)
	}
}
