// Package tool describes the supported tools and creates their parsers.
package tool

import (
	"errors"
	"fmt"

	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("duplicate tool id")
)

// Tool is a static analysis tool or a build tool whose output can be parsed.
type Tool interface {
	ID() string
	Name() string
	// Pattern is a glob pattern of the report files the tool usually writes. It may be empty.
	Pattern() string
	Help() string
	CanScanConsoleLog() bool
	// CreateParser returns a new parser. Parsers aren't shared, so call CreateParser per input.
	CreateParser() parser.Parser
}

// Describer is implemented by tools providing long descriptions of issue types.
type Describer interface {
	Description(typ, locale string) string
}

// Registry holds tools by ID in registration order.
type Registry struct {
	tools map[string]Tool
	ids   []string
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{
		tools: make(map[string]Tool, len(tools)),
		ids:   make([]string, 0, len(tools)),
	}
	for _, t := range tools {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Add(t Tool) error {
	if _, ok := r.tools[t.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.ID())
	}
	r.tools[t.ID()] = t
	r.ids = append(r.ids, t.ID())
	return nil
}

func (r *Registry) Get(id string) (Tool, error) {
	t, ok := r.tools[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, id)
	}
	return t, nil
}

// List returns tools in registration order.
func (r *Registry) List() []Tool {
	tools := make([]Tool, len(r.ids))
	for i, id := range r.ids {
		tools[i] = r.tools[id]
	}
	return tools
}
