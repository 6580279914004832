// Package scan parses reports and console logs of build tools and writes the found issues.
// Inputs are parsed concurrently and the issues are merged in input order.
package scan

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/config"
	"github.com/suzuki-shunsuke/warnings/pkg/github"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

type Controller struct {
	fs                  afero.Fs
	cfg                 *config.Config
	registry            *tool.Registry
	pullRequestsService github.PullRequestsService
	param               *Param
	logger              *Logger
}

type Param struct {
	Files       []string
	Tool        string
	Format      string
	Encoding    string
	MinSeverity string
	Locale      string
	StripPrefix string
	PWD         string
	Concurrency int
	Unique      bool
	Check       bool
	Stdin       bool
	Review      *Review
	Input       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

func New(fs afero.Fs, cfg *config.Config, registry *tool.Registry, pullRequestsService github.PullRequestsService, param *Param) *Controller {
	return &Controller{
		fs:                  fs,
		cfg:                 cfg,
		registry:            registry,
		pullRequestsService: pullRequestsService,
		param:               param,
		logger:              NewLogger(param.Stdout),
	}
}
