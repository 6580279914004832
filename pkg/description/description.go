// Package description resolves long descriptions of issue types.
//
// Descriptions are kept in YAML catalogs, one per tool.
// The catalogs of the built-in tools are embedded and users can add their own.
package description

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

// DefaultLocale is used when a description isn't available in the requested locale.
const DefaultLocale = "en"

var ErrInvalidCatalog = errors.New("invalid description catalog")

// File is a catalog file.
//
//	tool: findbugs
//	messages:
//	  - type: NP_NULL_ON_SOME_PATH
//	    text:
//	      en: There is a branch of statement that, if executed, guarantees that a null value will be dereferenced.
type File struct {
	Tool     string     `json:"tool" yaml:"tool" jsonschema:"description=ID of the tool"`
	Messages []*Message `json:"messages" yaml:"messages"`
}

type Message struct {
	Type string            `json:"type" yaml:"type" jsonschema:"description=Issue type like NP_NULL_ON_SOME_PATH"`
	Text map[string]string `json:"text" yaml:"text" jsonschema:"description=Descriptions by locale like en and ja"`
}

// Catalog maps issue types of a tool to descriptions per locale.
// A Catalog is immutable once built, so it can be shared between goroutines.
type Catalog struct {
	texts map[string]map[string]string
}

// Description returns the description of the issue type in the locale.
// It tries the locale, its base language and DefaultLocale in this order and returns "" if none is found.
// A nil Catalog has no description.
func (c *Catalog) Description(typ, locale string) string {
	if c == nil {
		return ""
	}
	texts, ok := c.texts[typ]
	if !ok {
		return ""
	}
	for _, l := range candidates(locale) {
		if text, ok := texts[l]; ok {
			return text
		}
	}
	return ""
}

// Size returns the number of issue types having descriptions.
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return len(c.texts)
}

func candidates(locale string) []string {
	tags := make([]string, 0, 3) //nolint:mnd
	if tag, err := language.Parse(locale); err == nil {
		tags = append(tags, tag.String())
		if base, conf := tag.Base(); conf != language.No {
			tags = append(tags, base.String())
		}
	}
	return append(tags, DefaultLocale)
}

// canonical normalizes a locale key of a catalog file, e.g. "ja_JP" becomes "ja-JP".
func canonical(locale string) (string, error) {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parse a locale: %w", err)
	}
	return tag.String(), nil
}

// Set holds catalogs by tool ID.
type Set struct {
	catalogs map[string]*Catalog
}

// Catalog returns the catalog of the tool or nil.
func (s *Set) Catalog(tool string) *Catalog {
	if s == nil {
		return nil
	}
	return s.catalogs[tool]
}

// Tools returns the number of tools having catalogs.
func (s *Set) Tools() int {
	if s == nil {
		return 0
	}
	return len(s.catalogs)
}

// With returns a new Set where the messages of files are added to s.
// A message of files overrides the message of s with the same tool, type and locale.
func (s *Set) With(files ...*File) (*Set, error) {
	texts := map[string]map[string]map[string]string{}
	if s != nil {
		for tool, c := range s.catalogs {
			for typ, m := range c.texts {
				for locale, text := range m {
					put(texts, tool, typ, locale, text)
				}
			}
		}
	}
	for _, f := range files {
		if f.Tool == "" {
			return nil, fmt.Errorf("%w: tool is required", ErrInvalidCatalog)
		}
		for _, m := range f.Messages {
			if m == nil || m.Type == "" {
				return nil, fmt.Errorf("%w: type is required: tool=%s", ErrInvalidCatalog, f.Tool)
			}
			for locale, text := range m.Text {
				l, err := canonical(locale)
				if err != nil {
					return nil, fmt.Errorf("%w: tool=%s type=%s: %w", ErrInvalidCatalog, f.Tool, m.Type, err)
				}
				put(texts, f.Tool, m.Type, l, strings.TrimSpace(text))
			}
		}
	}
	set := &Set{catalogs: make(map[string]*Catalog, len(texts))}
	for tool, m := range texts {
		set.catalogs[tool] = &Catalog{texts: m}
	}
	return set, nil
}

func put(texts map[string]map[string]map[string]string, tool, typ, locale, text string) {
	types, ok := texts[tool]
	if !ok {
		types = map[string]map[string]string{}
		texts[tool] = types
	}
	locales, ok := types[typ]
	if !ok {
		locales = map[string]string{}
		types[typ] = locales
	}
	locales[locale] = text
}

// Parse parses a catalog file.
func Parse(b []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(b, f); err != nil {
		return nil, fmt.Errorf("%w: parse YAML: %w", ErrInvalidCatalog, err)
	}
	return f, nil
}

// ReadFile reads a catalog file.
func ReadFile(afs afero.Fs, p string) (*File, error) {
	b, err := afero.ReadFile(afs, p)
	if err != nil {
		return nil, fmt.Errorf("read a catalog file: %w", err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return f, nil
}

//go:embed messages/*.yaml
var messages embed.FS

// Builtin returns the catalogs of the built-in tools.
// The embedded files are parsed on the first call.
var Builtin = sync.OnceValues(loadBuiltin) //nolint:gochecknoglobals

func loadBuiltin() (*Set, error) {
	files, err := fs.Glob(messages, "messages/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("find embedded catalogs: %w", err)
	}
	catalogs := make([]*File, 0, len(files))
	for _, name := range files {
		b, err := messages.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read an embedded catalog: %w", err)
		}
		f, err := Parse(b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		catalogs = append(catalogs, f)
	}
	return (&Set{}).With(catalogs...)
}

// Load returns the built-in catalogs extended with the catalog files at paths.
func Load(afs afero.Fs, paths []string) (*Set, error) {
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return builtin, nil
	}
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := ReadFile(afs, p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return builtin.With(files...)
}
