package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/config"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser/rule"
)

const configYAML = `version: 1
locale: ja
min_severity: WARNING_HIGH
path_mappings:
  - from: /build/ws/
    to: ""
files:
  - pattern: "**/findbugsXml.xml"
    tool: findbugs
  - pattern: build.log
    pattern_format: fixed_string
    tool: gcc
    encoding: windows-1252
tools:
  findbugs:
    use_rank_as_priority: true
parsers:
  - id: mytool
    name: My tool
    pattern: '^(.+):(\d+): (.*)$'
    accept_pattern: '\.log$'
    rule:
      version: 1
      fields:
        file_name: '{{.Group 1}}'
        line_start: '{{.Group 2}}'
        message: '{{.Group 3}}'
suites:
  - id: web
    name: Web
    tools: [eslint, tsc, mytool]
catalogs:
  - messages.yaml
`

func TestReader_Read(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, ".warnings.yaml", []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := config.NewFinder(fs).Find("")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, p); err != nil {
		t.Fatal(err)
	}
	exp := &config.Config{
		Version:      1,
		Locale:       "ja",
		MinSeverity:  "WARNING_HIGH",
		PathMappings: []*config.PathMapping{{From: "/build/ws/"}},
		Files: []*config.File{
			{Pattern: "**/findbugsXml.xml", PatternFormat: "glob", Tool: "findbugs"},
			{Pattern: "build.log", PatternFormat: "fixed_string", Tool: "gcc", Encoding: "windows-1252"},
		},
		Tools: &config.Tools{FindBugs: &config.FindBugs{UseRankAsPriority: true}},
		Parsers: []*config.Parser{
			{
				ID:            "mytool",
				Name:          "My tool",
				Pattern:       `^(.+):(\d+): (.*)$`,
				AcceptPattern: `\.log$`,
				Rule: &rule.Definition{
					Version: 1,
					Fields: map[string]string{
						"file_name":  "{{.Group 1}}",
						"line_start": "{{.Group 2}}",
						"message":    "{{.Group 3}}",
					},
				},
			},
		},
		Suites:   []*config.Suite{{ID: "web", Name: "Web", Tools: []string{"eslint", "tsc", "mytool"}}},
		Catalogs: []string{"messages.yaml"},
	}
	if diff := cmp.Diff(exp, cfg, cmpopts.IgnoreUnexported(config.Config{}, config.File{}, config.Parser{})); diff != "" {
		t.Fatal(diff)
	}
	if cfg.Severity() != issue.WarningHigh {
		t.Fatalf("unexpected min severity: %v", cfg.Severity())
	}
	if !cfg.UseRankAsPriority() {
		t.Fatal("use_rank_as_priority must be true")
	}
	if cfg.Parsers[0].Regexp() == nil || cfg.Parsers[0].AcceptRegexp() == nil || cfg.Parsers[0].CompiledRule() == nil {
		t.Fatal("the parser must be compiled")
	}
	if f, err := cfg.Files[0].Match("target/findbugsXml.xml"); err != nil || !f {
		t.Fatalf("the glob must match: %v, %v", f, err)
	}
}

func TestReader_Read_noFile(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{}
	if err := config.NewReader(afero.NewMemMapFs()).Read(cfg, ""); err != nil {
		t.Fatal(err)
	}
	if cfg.Severity() != 0 || cfg.UseRankAsPriority() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestReader_Read_invalid(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
	}{
		{name: "unsupported version", content: "version: 2"},
		{name: "unknown severity", content: "min_severity: fatal"},
		{name: "path mapping without from", content: "path_mappings: [{to: x}]"},
		{name: "parser without id", content: "parsers: [{pattern: x, rule: {fields: {message: x}}}]"},
		{name: "parser with invalid pattern", content: "parsers: [{id: a, pattern: '(', rule: {fields: {message: x}}}]"},
		{name: "parser with unknown mode", content: "parsers: [{id: a, mode: xml, pattern: x, rule: {fields: {message: x}}}]"},
		{name: "parser without rule", content: "parsers: [{id: a, pattern: x}]"},
		{name: "parser with invalid rule", content: "parsers: [{id: a, pattern: x, rule: {fields: {colour: x}}}]"},
		{name: "parser with a rule outside the dialect", content: "parsers: [{id: a, pattern: x, rule: {fields: {message: '{{range 3}}x{{end}}'}}}]"},
		{name: "parser with invalid file_pattern", content: "parsers: [{id: a, pattern: x, file_pattern: '**/[invalid', rule: {fields: {message: x}}}]"},
		{name: "file with invalid glob", content: "files: [{pattern: 'out/{a,b'}]"},
		{name: "suite without tools", content: "suites: [{id: a}]"},
		{name: "duplicate id", content: "parsers: [{id: a, pattern: x, rule: {fields: {message: x}}}]\nsuites: [{id: a, tools: [gcc]}]"},
		{name: "invalid yaml", content: "files: {"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "warnings.yaml", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := config.NewReader(fs).Read(&config.Config{}, "warnings.yaml"); err == nil {
				t.Fatal("error must be returned")
			}
		})
	}
}

func TestConfig_MapPath(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		PathMappings: []*config.PathMapping{
			{From: "/build/ws/", To: ""},
			{From: "/build/", To: "vendor/"},
		},
	}
	data := []struct {
		name string
		path string
		exp  string
	}{
		{name: "first mapping", path: "/build/ws/src/a.c", exp: "src/a.c"},
		{name: "second mapping", path: "/build/lib/b.c", exp: "vendor/lib/b.c"},
		{name: "no mapping", path: "src/c.c", exp: "src/c.c"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := cfg.MapPath(d.path); got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}
