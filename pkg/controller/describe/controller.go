// Package describe implements the 'warnings describe' command.
// It prints the long description of an issue type in the requested locale.
package describe

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

var ErrNoDescription = errors.New("no description is found")

type Controller struct {
	registry *tool.Registry
	stdout   io.Writer
}

type Param struct {
	Type   string
	Tool   string
	Locale string
}

func New(registry *tool.Registry, stdout io.Writer) *Controller {
	return &Controller{
		registry: registry,
		stdout:   stdout,
	}
}

func (c *Controller) Describe(logE *logrus.Entry, param *Param) error {
	locale := param.Locale
	if locale == "" {
		locale = description.DefaultLocale
	}
	toolID := param.Tool
	if toolID == "" {
		toolID = tool.IDAll
	}
	t, err := c.registry.Get(toolID)
	if err != nil {
		return fmt.Errorf("get a tool: %w", err)
	}
	d, ok := t.(tool.Describer)
	if !ok {
		return fmt.Errorf("%w: the tool %s has no description catalog", ErrNoDescription, toolID)
	}
	desc := d.Description(param.Type, locale)
	if desc == "" {
		return fmt.Errorf("%w: %s", ErrNoDescription, param.Type)
	}
	logE.WithFields(logrus.Fields{
		"tool":   toolID,
		"type":   param.Type,
		"locale": locale,
	}).Debug("found a description")
	fmt.Fprintln(c.stdout, desc)
	return nil
}
