package tool

import (
	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/parsers"
)

const (
	IDJava = "java"
	IDAll  = "all"
)

// Grammar is a tool backed by a built-in grammar.
type Grammar struct {
	id      string
	name    string
	pattern string
	help    string
	console bool
	create  func() parser.Parser
}

func (g *Grammar) ID() string                  { return g.id }
func (g *Grammar) Name() string                { return g.name }
func (g *Grammar) Pattern() string             { return g.pattern }
func (g *Grammar) Help() string                { return g.help }
func (g *Grammar) CanScanConsoleLog() bool     { return g.console }
func (g *Grammar) CreateParser() parser.Parser { return g.create() }

// Described is a Grammar with a description catalog.
type Described struct {
	*Grammar
	catalog *description.Catalog
}

func (d *Described) Description(typ, locale string) string {
	return d.catalog.Description(typ, locale)
}

const puppetLintHelp = `puppet-lint must print issues in the following log format:

  %{path}:%{line}:%{check}:%{KIND}:%{message}

e.g.

  find . -iname '*.pp' -exec puppet-lint --log-format "%{path}:%{line}:%{check}:%{KIND}:%{message}" {} \;

The default format "KIND: message on line N" is also accepted but lacks check names.`

func NewPuppetLint() *Grammar {
	return &Grammar{
		id:      parsers.IDPuppetLint,
		name:    "Puppet-Lint",
		help:    puppetLintHelp,
		console: true,
		create: func() parser.Parser {
			return parsers.NewPuppetLint()
		},
	}
}

func NewEclipse() *Grammar {
	return &Grammar{
		id:      parsers.IDEclipse,
		name:    "Eclipse ECJ",
		help:    "Output of the Eclipse compiler for Java run by Ant (javac adapter) or Maven.",
		console: true,
		create: func() parser.Parser {
			return parsers.NewEclipse()
		},
	}
}

func NewGCC() *Grammar {
	return &Grammar{
		id:      parsers.IDGCC,
		name:    "GNU C Compiler",
		help:    "Diagnostics of GCC and Clang in the default format file:line:column: kind: message.",
		console: true,
		create: func() parser.Parser {
			return parsers.NewGCC()
		},
	}
}

func NewTypeScript() *Grammar {
	return &Grammar{
		id:      parsers.IDTypeScript,
		name:    "TypeScript",
		help:    "Output of tsc. Both --pretty and --pretty false are supported.",
		console: true,
		create: func() parser.Parser {
			return parsers.NewTypeScript()
		},
	}
}

func NewPylint(catalog *description.Catalog) *Described {
	return &Described{
		Grammar: &Grammar{
			id:      parsers.IDPylint,
			name:    "Pylint",
			pattern: "**/pylint.log",
			help:    `Text output of pylint, e.g. pylint --output-format=text or --output-format=parseable.`,
			console: true,
			create: func() parser.Parser {
				return parsers.NewPylint()
			},
		},
		catalog: catalog,
	}
}

func NewCheckStyle() *Grammar {
	return &Grammar{
		id:      parsers.IDCheckStyle,
		name:    "CheckStyle",
		pattern: "**/checkstyle-result.xml",
		help:    "XML reports in the Checkstyle format.",
		create: func() parser.Parser {
			return parsers.NewCheckStyle()
		},
	}
}

func NewESLint() *Grammar {
	return &Grammar{
		id:   parsers.IDESLint,
		name: "ESLint",
		help: "Reports of eslint --format json.",
		create: func() parser.Parser {
			return parsers.NewESLint()
		},
	}
}

// FindBugs parses FindBugs and SpotBugs XML reports.
type FindBugs struct {
	// UseRankAsPriority selects the bug rank instead of the priority attribute as the source of severities.
	UseRankAsPriority bool
	catalog           *description.Catalog
}

func NewFindBugs(useRankAsPriority bool, catalog *description.Catalog) *FindBugs {
	return &FindBugs{
		UseRankAsPriority: useRankAsPriority,
		catalog:           catalog,
	}
}

func (f *FindBugs) ID() string              { return parsers.IDFindBugs }
func (f *FindBugs) Name() string            { return "FindBugs" }
func (f *FindBugs) Pattern() string         { return "**/findbugsXml.xml" }
func (f *FindBugs) CanScanConsoleLog() bool { return false }

func (f *FindBugs) Help() string {
	return "XML reports of FindBugs and SpotBugs. Set tools.findbugs.use_rank_as_priority to derive severities from bug ranks."
}

func (f *FindBugs) CreateParser() parser.Parser {
	return parsers.NewFindBugs(f.UseRankAsPriority)
}

func (f *FindBugs) Description(typ, locale string) string {
	return f.catalog.Description(typ, locale)
}

// Options configures the built-in tools.
type Options struct {
	UseRankAsPriority bool
	Catalogs          *description.Set
}

// Builtin returns the built-in tools, including the suites java and all.
func Builtin(opts *Options) []Tool {
	if opts == nil {
		opts = &Options{}
	}
	findBugs := NewFindBugs(opts.UseRankAsPriority, opts.Catalogs.Catalog(parsers.IDFindBugs))
	checkStyle := NewCheckStyle()
	eclipse := NewEclipse()
	grammars := []Tool{
		NewPuppetLint(),
		eclipse,
		NewGCC(),
		NewTypeScript(),
		NewPylint(opts.Catalogs.Catalog(parsers.IDPylint)),
		findBugs,
		checkStyle,
		NewESLint(),
	}
	return append(grammars,
		NewSuite(IDJava, "Java", eclipse, checkStyle, findBugs),
		NewSuite(IDAll, "All built-in tools", grammars...),
	)
}
