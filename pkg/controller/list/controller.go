// Package list implements the 'warnings tools' command.
// It lists the available tools, including parsers and suites defined in the configuration file.
package list

import (
	"io"

	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

// Controller handles the tools command operations.
type Controller struct {
	registry *tool.Registry
	param    *Param
	stdout   io.Writer
}

// Param contains parameters for the tools command.
type Param struct {
	LineTemplate string
	Console      bool
}

func New(registry *tool.Registry, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		registry: registry,
		param:    param,
		stdout:   stdout,
	}
}
