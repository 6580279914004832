package tool

import (
	"fmt"

	"github.com/suzuki-shunsuke/warnings/pkg/config"
	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
	"github.com/suzuki-shunsuke/warnings/pkg/parser/rule"
)

// Rule is a tool defined in the configuration file by a pattern and a rule.
type Rule struct {
	cfg     *config.Parser
	accept  parser.AcceptFunc
	catalog *description.Catalog
}

// NewRule returns a tool of an initialized parser configuration.
// catalog may be nil.
func NewRule(cfg *config.Parser, catalog *description.Catalog) (*Rule, error) {
	t := &Rule{cfg: cfg, catalog: catalog}
	if r := cfg.AcceptRegexp(); r != nil {
		t.accept = func(h *parser.Header) bool {
			return r.MatchString(h.Path)
		}
	}
	if _, err := rule.NewParser(cfg.ID, cfg.Mode, cfg.Regexp(), cfg.CompiledRule(), t.accept); err != nil {
		return nil, fmt.Errorf("create a parser of %s: %w", cfg.ID, err)
	}
	return t, nil
}

func (r *Rule) ID() string { return r.cfg.ID }

func (r *Rule) Name() string {
	if r.cfg.Name == "" {
		return r.cfg.ID
	}
	return r.cfg.Name
}

func (r *Rule) Pattern() string         { return r.cfg.FilePattern }
func (r *Rule) Help() string            { return r.cfg.Help }
func (r *Rule) CanScanConsoleLog() bool { return r.cfg.Console }

func (r *Rule) Description(typ, locale string) string {
	return r.catalog.Description(typ, locale)
}

func (r *Rule) CreateParser() parser.Parser {
	if r.cfg.Mode == rule.ModeDocument {
		return rule.NewDocumentParser(r.cfg.ID, r.cfg.Regexp(), r.cfg.CompiledRule(), r.accept)
	}
	return rule.NewLineParser(r.cfg.ID, r.cfg.Regexp(), r.cfg.CompiledRule(), r.accept)
}

// FromConfig returns a registry of the built-in tools and the tools defined in the configuration.
// cfg must be initialized.
func FromConfig(cfg *config.Config, opts *Options) (*Registry, error) {
	if opts == nil {
		opts = &Options{}
	}
	reg, err := NewRegistry(Builtin(opts)...)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Parsers {
		t, err := NewRule(p, opts.Catalogs.Catalog(p.ID))
		if err != nil {
			return nil, err
		}
		if err := reg.Add(t); err != nil {
			return nil, err
		}
	}
	for _, s := range cfg.Suites {
		tools := make([]Tool, len(s.Tools))
		for i, id := range s.Tools {
			t, err := reg.Get(id)
			if err != nil {
				return nil, fmt.Errorf("suite %s: %w", s.ID, err)
			}
			tools[i] = t
		}
		name := s.Name
		if name == "" {
			name = s.ID
		}
		if err := reg.Add(NewSuite(s.ID, name, tools...)); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
