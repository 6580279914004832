// Package config reads the configuration file .warnings.yaml.
package config

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser/rule"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"
)

const schemaVersion = 1

type Config struct {
	Version      int            `json:"version,omitempty" jsonschema:"enum=1"`
	Locale       string         `json:"locale,omitempty" jsonschema:"description=Locale of issue descriptions. The default is en"`
	MinSeverity  string         `json:"min_severity,omitempty" yaml:"min_severity" jsonschema:"enum=WARNING_LOW,enum=WARNING_NORMAL,enum=WARNING_HIGH,enum=ERROR"`
	PathMappings []*PathMapping `json:"path_mappings,omitempty" yaml:"path_mappings" jsonschema:"description=Rewrite file names in issues. The first mapping whose from is a prefix of the file name is used"`
	Files        []*File        `json:"files,omitempty" jsonschema:"description=Target files. If files are passed via positional command line arguments, this is ignored"`
	Tools        *Tools         `json:"tools,omitempty"`
	Parsers      []*Parser      `json:"parsers,omitempty" jsonschema:"description=Tools defined by a regular expression and a rule"`
	Suites       []*Suite       `json:"suites,omitempty" jsonschema:"description=Tools combining other tools"`
	Catalogs     []string       `json:"catalogs,omitempty" jsonschema:"description=Paths of description catalog files"`
	minSeverity  issue.Severity
}

type PathMapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type File struct {
	Pattern       string `json:"pattern" jsonschema:"description=A pattern of target files"`
	PatternFormat string `json:"pattern_format,omitempty" yaml:"pattern_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp,description=The default is glob"`
	Tool          string `json:"tool,omitempty" jsonschema:"description=ID of the tool parsing the files. The default is the --tool option"`
	Encoding      string `json:"encoding,omitempty" jsonschema:"description=Encoding of the files. The default is UTF-8"`
	patternRegexp *regexp.Regexp
}

type Tools struct {
	FindBugs *FindBugs `json:"findbugs,omitempty" yaml:"findbugs"`
}

type FindBugs struct {
	UseRankAsPriority bool `json:"use_rank_as_priority,omitempty" yaml:"use_rank_as_priority" jsonschema:"description=Derive severities from bug ranks instead of priorities"`
}

type Parser struct {
	ID            string           `json:"id"`
	Name          string           `json:"name,omitempty"`
	Mode          string           `json:"mode,omitempty" jsonschema:"enum=line,enum=document,description=The default is line"`
	Pattern       string           `json:"pattern" jsonschema:"description=A regular expression matching a record"`
	AcceptPattern string           `json:"accept_pattern,omitempty" yaml:"accept_pattern" jsonschema:"description=A regular expression of accepted file paths"`
	FilePattern   string           `json:"file_pattern,omitempty" yaml:"file_pattern" jsonschema:"description=A glob pattern of report files the tool usually writes"`
	Console       bool             `json:"console,omitempty" jsonschema:"description=Whether the tool can scan console logs"`
	Help          string           `json:"help,omitempty"`
	Rule          *rule.Definition `json:"rule"`
	pattern       *regexp.Regexp
	acceptPattern *regexp.Regexp
	rule          *rule.Rule
}

type Suite struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Tools []string `json:"tools" jsonschema:"description=IDs of the combined tools"`
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

func validateSchemaVersion(v int) error {
	if v != 0 && v != schemaVersion {
		return fmt.Errorf("unsupported version: %d", v)
	}
	return nil
}

func (c *Config) Init() error {
	if err := validateSchemaVersion(c.Version); err != nil {
		return err
	}
	if c.MinSeverity != "" {
		sev, err := issue.ParseSeverity(c.MinSeverity)
		if err != nil {
			return fmt.Errorf("parse min_severity: %w", err)
		}
		c.minSeverity = sev
	}
	for _, m := range c.PathMappings {
		if m.From == "" {
			return errors.New("path_mappings[].from is required")
		}
	}
	for _, file := range c.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	ids := map[string]struct{}{}
	for _, p := range c.Parsers {
		if err := p.Init(); err != nil {
			return fmt.Errorf("initialize parser %s: %w", p.ID, err)
		}
		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("duplicate id: %s", p.ID)
		}
		ids[p.ID] = struct{}{}
	}
	for _, s := range c.Suites {
		if err := s.Init(); err != nil {
			return fmt.Errorf("initialize suite %s: %w", s.ID, err)
		}
		if _, ok := ids[s.ID]; ok {
			return fmt.Errorf("duplicate id: %s", s.ID)
		}
		ids[s.ID] = struct{}{}
	}
	return nil
}

// Severity returns the parsed min_severity. It returns 0 if min_severity isn't set.
func (c *Config) Severity() issue.Severity {
	return c.minSeverity
}

// UseRankAsPriority returns tools.findbugs.use_rank_as_priority.
func (c *Config) UseRankAsPriority() bool {
	if c.Tools == nil || c.Tools.FindBugs == nil {
		return false
	}
	return c.Tools.FindBugs.UseRankAsPriority
}

// MapPath rewrites a file name by the first matching path mapping.
func (c *Config) MapPath(name string) string {
	for _, m := range c.PathMappings {
		if rest, ok := strings.CutPrefix(name, m.From); ok {
			return m.To + rest
		}
	}
	return name
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if f.PatternFormat == "" {
		f.PatternFormat = formatGlob
	}
	r, err := initFormat(f.Pattern, f.PatternFormat)
	if err != nil {
		return err
	}
	f.patternRegexp = r
	if f.Encoding != "" {
		if _, err := htmlindex.Get(f.Encoding); err != nil {
			return fmt.Errorf("unknown encoding %s: %w", f.Encoding, err)
		}
	}
	return nil
}

// Match reports whether a slash separated relative path matches the pattern.
func (f *File) Match(p string) (bool, error) {
	return match(p, f.Pattern, f.PatternFormat, f.patternRegexp)
}

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if !doublestar.ValidatePattern(value) {
			return nil, fmt.Errorf("parse as a glob: %w", doublestar.ErrBadPattern)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("pattern_format must be fixed_string, glob, or regexp")
	}
}

func match(value, pattern, format string, r *regexp.Regexp) (bool, error) {
	switch format {
	case formatFixedString:
		return value == pattern, nil
	case formatGlob:
		f, err := matchGlob(pattern, value)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		return r.MatchString(value), nil
	default:
		return false, errors.New("unexpected format: " + format)
	}
}

// matchGlob matches a slash separated path. The element ** matches zero or more directories.
func matchGlob(pattern, name string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, doublestar.ErrBadPattern
	}
	f, err := doublestar.Match(pattern, name)
	if err != nil {
		return false, fmt.Errorf("match a glob: %w", err)
	}
	return f, nil
}

func (p *Parser) Init() error {
	if p.ID == "" {
		return errors.New("id is required")
	}
	if p.Pattern == "" {
		return errors.New("pattern is required")
	}
	r, err := regexp.Compile(p.Pattern)
	if err != nil {
		return fmt.Errorf("compile pattern as a regular expression: %w", err)
	}
	p.pattern = r
	if p.AcceptPattern != "" {
		r, err := regexp.Compile(p.AcceptPattern)
		if err != nil {
			return fmt.Errorf("compile accept_pattern as a regular expression: %w", err)
		}
		p.acceptPattern = r
	}
	if p.FilePattern != "" {
		if !doublestar.ValidatePattern(p.FilePattern) {
			return fmt.Errorf("parse file_pattern as a glob: %w", doublestar.ErrBadPattern)
		}
	}
	switch p.Mode {
	case "", rule.ModeLine, rule.ModeDocument:
	default:
		return fmt.Errorf("mode must be %s or %s", rule.ModeLine, rule.ModeDocument)
	}
	compiled, err := rule.Compile(p.Rule)
	if err != nil {
		return fmt.Errorf("compile the rule: %w", err)
	}
	p.rule = compiled
	return nil
}

// Regexp returns the compiled pattern. Init must be called in advance.
func (p *Parser) Regexp() *regexp.Regexp {
	return p.pattern
}

// AcceptRegexp returns the compiled accept_pattern or nil.
func (p *Parser) AcceptRegexp() *regexp.Regexp {
	return p.acceptPattern
}

// CompiledRule returns the compiled rule. Init must be called in advance.
func (p *Parser) CompiledRule() *rule.Rule {
	return p.rule
}

func (s *Suite) Init() error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if len(s.Tools) == 0 {
		return errors.New("tools is required")
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".warnings.yaml", ".github/warnings.yaml", ".warnings.yml", ".github/warnings.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath != "" {
		f, err := r.fs.Open(configFilePath)
		if err != nil {
			return fmt.Errorf("open a configuration file: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode a configuration file as YAML: %w", err)
		}
	}
	return cfg.Init()
}
