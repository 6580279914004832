// Package describe implements the 'warnings describe' command.
package describe

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/describe"
	"github.com/suzuki-shunsuke/warnings/pkg/di"
	"github.com/suzuki-shunsuke/warnings/pkg/log"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	Tool     string
	Locale   string
	Catalogs []string
	Type     string
}

type runner struct{}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{}
	return r.Command(logE, globalFlags)
}

func (r *runner) Command(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:      "describe",
		Usage:     "Show the description of an issue type",
		ArgsUsage: "TYPE",
		Description: `Show the description of an issue type.

$ warnings describe --tool findbugs NP_NULL_ON_SOME_PATH
$ warnings describe --locale ja missing-module-docstring
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(logE, globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tool",
				Aliases:     []string{"t"},
				Usage:       "Tool ID. The default is all",
				Destination: &flags.Tool,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "Locale of the description",
				Sources:     cli.EnvVars("WARNINGS_LOCALE"),
				Destination: &flags.Locale,
			},
			&cli.StringSliceFlag{
				Name:        "catalog",
				Usage:       "A path of a description catalog file",
				Destination: &flags.Catalogs,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "type",
				Destination: &flags.Type,
			},
		},
	}
}

func (r *runner) action(logE *logrus.Entry, globalFlags *flag.GlobalFlags, flags *Flags) error {
	if err := log.Set(logE, globalFlags.LogLevel, globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	if flags.Type == "" {
		return errors.New("an issue type is required")
	}
	cfg, registry, err := di.Load(afero.NewOsFs(), globalFlags.Config, flags.Catalogs)
	if err != nil {
		return err //nolint:wrapcheck
	}
	locale := flags.Locale
	if locale == "" {
		locale = cfg.Locale
	}
	return describe.New(registry, os.Stdout).Describe(logE, &describe.Param{ //nolint:wrapcheck
		Type:   flags.Type,
		Tool:   flags.Tool,
		Locale: locale,
	})
}
