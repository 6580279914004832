// Package tools implements the 'warnings tools' command.
package tools

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/list"
	"github.com/suzuki-shunsuke/warnings/pkg/di"
	"github.com/suzuki-shunsuke/warnings/pkg/log"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	LineTemplate string
	Console      bool
}

type runner struct{}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{}
	return r.Command(logE, globalFlags)
}

func (r *runner) Command(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:    "tools",
		Aliases: []string{"list"},
		Usage:   "List tools",
		Description: `List built-in tools and tools defined in the configuration file.

$ warnings tools

Output format (default TSV):
<ID>	<Name>	<Pattern>	<Console>	<Help>

Custom output format using Go template:
$ warnings tools --line-template "{{.ID}}"

Available template fields:
  ID      - Tool ID passed to --tool
  Name    - Display name
  Pattern - Glob pattern of report files the tool usually writes
  Console - Whether the tool can parse console logs
  Help    - Description of the input format
  Members - IDs of suite members
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(logE, globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
			&cli.BoolFlag{
				Name:        "console",
				Usage:       "List only tools which can parse console logs",
				Destination: &flags.Console,
			},
		},
	}
}

func (r *runner) action(logE *logrus.Entry, globalFlags *flag.GlobalFlags, flags *Flags) error {
	if err := log.Set(logE, globalFlags.LogLevel, globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	_, registry, err := di.Load(afero.NewOsFs(), globalFlags.Config, nil)
	if err != nil {
		return err //nolint:wrapcheck
	}
	ctrl := list.New(registry, &list.Param{
		LineTemplate: flags.LineTemplate,
		Console:      flags.Console,
	}, os.Stdout)
	return ctrl.List(logE) //nolint:wrapcheck
}
