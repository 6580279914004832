// Package rule builds parsers from rules supplied as data.
//
// A rule maps issue fields to expressions. Expressions are text/template
// templates evaluated against the match of the parser pattern:
//
//	{{.Group 2}}          the second submatch
//	{{.Named "file"}}     the submatch of a named group
//	{{.Line}}             the line number where the match starts
//
// The dialect is closed: the actions are output and if/else, and the functions
// are trim, lower, upper, replace OLD NEW S, default DEFAULT S, basename
// and the comparisons eq, ne, and, or and not.
// range, with, define, template, block and variables are rejected by Compile.
package rule

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
	"text/template"
	"text/template/parse"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

// Version is the only supported version of the rule format.
const Version = 1

const (
	ModeLine     = "line"
	ModeDocument = "document"
)

var ErrInvalidRule = errors.New("invalid rule")

// Definition is the data form of a rule.
type Definition struct {
	// Version defaults to the latest version.
	Version int `json:"version,omitempty" yaml:"version" jsonschema:"enum=1"`
	// Fields maps issue fields like file_name and line_start to expressions.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Rule is a compiled Definition. It is safe for concurrent use.
type Rule struct {
	fields []*field
}

type field struct {
	name string
	tmpl *template.Template
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"trim":  strings.TrimSpace,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"replace": func(oldS, newS, s string) string {
			return strings.ReplaceAll(s, oldS, newS)
		},
		"default": func(d, s string) string {
			if s == "" {
				return d
			}
			return s
		},
		"basename": func(s string) string {
			return path.Base(strings.ReplaceAll(s, `\`, "/"))
		},
	}
}

// Compile validates and compiles a definition.
func Compile(def *Definition) (*Rule, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: rule is required", ErrInvalidRule)
	}
	if def.Version != 0 && def.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidRule, def.Version)
	}
	if len(def.Fields) == 0 {
		return nil, fmt.Errorf("%w: fields are required", ErrInvalidRule)
	}
	names := make([]string, 0, len(def.Fields))
	for name := range def.Fields {
		if !issue.IsField(name) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidRule, name)
		}
		names = append(names, name)
	}
	// the order of Fields is stable so that errors are deterministic
	slices.SortFunc(names, func(a, b string) int {
		return slices.Index(issue.Fields(), a) - slices.Index(issue.Fields(), b)
	})
	r := &Rule{fields: make([]*field, 0, len(names))}
	for _, name := range names {
		tmpl, err := template.New(name).Funcs(funcMap()).Parse(def.Fields[name])
		if err != nil {
			return nil, fmt.Errorf("%w: parse the expression of %s: %w", ErrInvalidRule, name, err)
		}
		if err := validateTemplate(tmpl); err != nil {
			return nil, fmt.Errorf("%w: the expression of %s: %w", ErrInvalidRule, name, err)
		}
		r.fields = append(r.fields, &field{name: name, tmpl: tmpl})
	}
	return r, nil
}

var (
	allowedFuncs = map[string]struct{}{
		"trim": {}, "lower": {}, "upper": {}, "replace": {}, "default": {}, "basename": {},
		"eq": {}, "ne": {}, "and": {}, "or": {}, "not": {},
	}
	allowedFields = map[string]struct{}{
		"Group": {}, "Named": {}, "Line": {},
	}
)

func validateTemplate(tmpl *template.Template) error {
	if len(tmpl.Templates()) > 1 {
		return errors.New("define and block aren't supported")
	}
	if tmpl.Tree == nil || tmpl.Tree.Root == nil {
		return nil
	}
	return validateNode(tmpl.Tree.Root)
}

func validateNode(node parse.Node) error { //nolint:cyclop
	switch n := node.(type) {
	case nil:
		return nil
	case *parse.ListNode:
		if n == nil {
			return nil
		}
		for _, c := range n.Nodes {
			if err := validateNode(c); err != nil {
				return err
			}
		}
		return nil
	case *parse.TextNode, *parse.CommentNode, *parse.StringNode, *parse.NumberNode, *parse.BoolNode:
		return nil
	case *parse.ActionNode:
		return validateNode(n.Pipe)
	case *parse.IfNode:
		if err := validateNode(n.Pipe); err != nil {
			return err
		}
		if err := validateNode(n.List); err != nil {
			return err
		}
		return validateNode(n.ElseList)
	case *parse.PipeNode:
		if n == nil {
			return nil
		}
		if len(n.Decl) > 0 {
			return errors.New("variables aren't supported")
		}
		for _, c := range n.Cmds {
			if err := validateNode(c); err != nil {
				return err
			}
		}
		return nil
	case *parse.CommandNode:
		for _, arg := range n.Args {
			if err := validateNode(arg); err != nil {
				return err
			}
		}
		return nil
	case *parse.IdentifierNode:
		if _, ok := allowedFuncs[n.Ident]; !ok {
			return fmt.Errorf("the function %s isn't supported", n.Ident)
		}
		return nil
	case *parse.FieldNode:
		if len(n.Ident) != 1 {
			return fmt.Errorf("%s isn't supported", n.String())
		}
		if _, ok := allowedFields[n.Ident[0]]; !ok {
			return fmt.Errorf("%s isn't supported", n.String())
		}
		return nil
	default:
		return fmt.Errorf("%q isn't supported", node.String())
	}
}

// Match is the data expressions are evaluated against.
type Match struct {
	record *parser.Record
}

func (m *Match) Group(i int) string {
	return m.record.Group(i)
}

func (m *Match) Named(name string) string {
	return m.record.Named(name)
}

func (m *Match) Line() int {
	return m.record.Number
}

// Apply evaluates every expression and sets the results to the builder.
// It is a parser.Handler.
func (r *Rule) Apply(rec *parser.Record, b *issue.Builder) error {
	data := &Match{record: rec}
	buf := &bytes.Buffer{}
	for _, f := range r.fields {
		buf.Reset()
		if err := f.tmpl.Execute(buf, data); err != nil {
			return fmt.Errorf("evaluate the expression of %s: %w", f.name, err)
		}
		b.Set(f.name, buf.String())
	}
	return nil
}

// NewParser creates a parser applying the rule to every match of pattern.
// In ModeLine the pattern is matched against each line and in ModeDocument
// against the whole input, so it can span several lines.
// accept may be nil to accept text inputs.
func NewParser(origin, mode string, pattern *regexp.Regexp, r *Rule, accept parser.AcceptFunc) (parser.Parser, error) {
	if pattern == nil {
		return nil, fmt.Errorf("%w: pattern is required", ErrInvalidRule)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: rule is required", ErrInvalidRule)
	}
	switch mode {
	case ModeLine, "":
		return NewLineParser(origin, pattern, r, accept), nil
	case ModeDocument:
		return NewDocumentParser(origin, pattern, r, accept), nil
	default:
		return nil, fmt.Errorf("%w: mode must be %s or %s: %q", ErrInvalidRule, ModeLine, ModeDocument, mode)
	}
}

func NewLineParser(origin string, pattern *regexp.Regexp, r *Rule, accept parser.AcceptFunc) *parser.LineParser {
	return &parser.LineParser{
		Origin: origin,
		Rules:  []*parser.LineRule{{Pattern: pattern, Handle: r.Apply}},
		Accept: accept,
	}
}

func NewDocumentParser(origin string, pattern *regexp.Regexp, r *Rule, accept parser.AcceptFunc) *parser.DocumentParser {
	return &parser.DocumentParser{
		Origin:  origin,
		Pattern: pattern,
		Handle:  r.Apply,
		Accept:  accept,
	}
}
