package tool_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/warnings/pkg/config"
	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/parser/rule"
	"github.com/suzuki-shunsuke/warnings/pkg/parsers"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

const findBugsReport = `<?xml version="1.0" encoding="UTF-8"?>
<BugCollection version="4.7.3">
  <BugInstance type="NP_NULL_ON_SOME_PATH" priority="2" rank="1" category="CORRECTNESS">
    <LongMessage>Possible null pointer dereference</LongMessage>
    <SourceLine classname="a.B" start="3" end="3" sourcepath="a/B.java"/>
  </BugInstance>
</BugCollection>
`

func TestFindBugs_CreateParser(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		useRank bool
		exp     issue.Severity
	}{
		{name: "rank", useRank: true, exp: issue.Error},
		{name: "priority", useRank: false, exp: issue.WarningNormal},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			report, err := tool.NewFindBugs(d.useRank, nil).CreateParser().Parse(&parser.Input{
				Source: parser.StringSource("findbugsXml.xml", findBugsReport),
			})
			if err != nil {
				t.Fatal(err)
			}
			if report.Size() != 1 {
				t.Fatalf("wanted 1 issue, got %d", report.Size())
			}
			if got := report.Get(0).Severity; got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}

func TestBuiltin(t *testing.T) {
	t.Parallel()
	catalogs, err := description.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	reg, err := tool.NewRegistry(tool.Builtin(&tool.Options{Catalogs: catalogs})...)
	if err != nil {
		t.Fatal(err)
	}
	ids := make([]string, 0, len(reg.List()))
	for _, tl := range reg.List() {
		ids = append(ids, tl.ID())
	}
	exp := []string{"puppetlint", "eclipse", "gcc", "tsc", "pylint", "findbugs", "checkstyle", "eslint", "java", "all"}
	if diff := cmp.Diff(exp, ids); diff != "" {
		t.Fatal(diff)
	}
	fb, err := reg.Get("findbugs")
	if err != nil {
		t.Fatal(err)
	}
	if fb.CanScanConsoleLog() || fb.Pattern() != "**/findbugsXml.xml" {
		t.Fatalf("unexpected findbugs tool: %v %s", fb.CanScanConsoleLog(), fb.Pattern())
	}
	java, err := reg.Get(tool.IDJava)
	if err != nil {
		t.Fatal(err)
	}
	d, ok := java.(tool.Describer)
	if !ok {
		t.Fatal("suites must implement Describer")
	}
	if d.Description("NP_NULL_ON_SOME_PATH", "en") == "" {
		t.Fatal("the java suite must describe findbugs issues")
	}
	if _, ok := fb.(tool.Describer); !ok {
		t.Fatal("findbugs must implement Describer")
	}
	gcc, err := reg.Get(parsers.IDGCC)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := gcc.(tool.Describer); ok {
		t.Fatal("gcc has no descriptions")
	}
	if _, err := reg.Get("lint"); !errors.Is(err, tool.ErrUnknownTool) {
		t.Fatalf("error must be ErrUnknownTool: %v", err)
	}
}

func TestSuite_CreateParser(t *testing.T) {
	t.Parallel()
	reg, err := tool.NewRegistry(tool.Builtin(nil)...)
	if err != nil {
		t.Fatal(err)
	}
	all, err := reg.Get(tool.IDAll)
	if err != nil {
		t.Fatal(err)
	}
	log := "src/main.c:10:5: warning: unused variable 'x' [-Wunused-variable]\n" +
		"src/app.ts(1,1): error TS2304: Cannot find name 'foo'.\n"
	report, err := all.CreateParser().Parse(&parser.Input{Source: parser.StringSource("console.log", log)})
	if err != nil {
		t.Fatal(err)
	}
	origins := make([]string, report.Size())
	for i, is := range report.Issues() {
		origins[i] = is.Origin
	}
	if diff := cmp.Diff([]string{parsers.IDGCC, parsers.IDTypeScript}, origins); diff != "" {
		t.Fatal(diff)
	}
	if !all.CanScanConsoleLog() {
		t.Fatal("the suite all must scan console logs")
	}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Parsers: []*config.Parser{
			{
				ID:            "shellcheck",
				Pattern:       `^(?P<file>[^:]+):(?P<line>\d+):(?P<col>\d+): (?P<level>\w+): (?P<msg>.*) \[(?P<code>SC\d+)\]$`,
				AcceptPattern: `\.log$`,
				Console:       true,
				Rule: &rule.Definition{
					Fields: map[string]string{
						issue.FieldFileName:    `{{.Named "file"}}`,
						issue.FieldLineStart:   `{{.Named "line"}}`,
						issue.FieldColumnStart: `{{.Named "col"}}`,
						issue.FieldSeverity:    `{{if eq (.Named "level") "error"}}ERROR{{else}}WARNING_NORMAL{{end}}`,
						issue.FieldType:        `{{.Named "code"}}`,
						issue.FieldMessage:     `{{.Named "msg"}}`,
					},
				},
			},
		},
		Suites: []*config.Suite{
			{ID: "shell", Tools: []string{"shellcheck", parsers.IDTypeScript}},
		},
	}
	if err := cfg.Init(); err != nil {
		t.Fatal(err)
	}
	reg, err := tool.FromConfig(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	shell, err := reg.Get("shell")
	if err != nil {
		t.Fatal(err)
	}
	if shell.Name() != "shell" || !shell.CanScanConsoleLog() {
		t.Fatalf("unexpected suite: %s %v", shell.Name(), shell.CanScanConsoleLog())
	}
	in := &parser.Input{Source: parser.StringSource("ci.log", "run.sh:3:8: error: Double quote to prevent globbing. [SC2086]\n")}
	report, err := shell.CreateParser().Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	exp := []issue.Issue{
		{
			FileName:    "run.sh",
			LineStart:   3,
			LineEnd:     3,
			ColumnStart: 8,
			ColumnEnd:   8,
			Severity:    issue.Error,
			Type:        "SC2086",
			Message:     "Double quote to prevent globbing.",
			Origin:      "shellcheck",
		},
	}
	if diff := cmp.Diff(exp, report.Issues()); diff != "" {
		t.Fatal(diff)
	}
	report, err = shell.CreateParser().Parse(&parser.Input{Source: parser.StringSource("ci.txt", "run.sh:3:8: error: x [SC2086]\n")})
	if err != nil {
		t.Fatal(err)
	}
	if !report.IsEmpty() {
		t.Fatal("the parser must not accept paths not matching accept_pattern")
	}
}

func TestFromConfig_invalid(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		cfg  *config.Config
	}{
		{
			name: "unknown member",
			cfg:  &config.Config{Suites: []*config.Suite{{ID: "web", Tools: []string{"stylelint"}}}},
		},
		{
			name: "builtin id",
			cfg:  &config.Config{Suites: []*config.Suite{{ID: "gcc", Tools: []string{"tsc"}}}},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if err := d.cfg.Init(); err != nil {
				t.Fatal(err)
			}
			if _, err := tool.FromConfig(d.cfg, nil); err == nil {
				t.Fatal("error must be returned")
			}
		})
	}
}
