// Package initcmd implements the 'warnings init' command.
// It creates a configuration file with commented examples.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/warnings/pkg/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".warnings.yaml"

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{}
	return r.Command(logE, globalFlags)
}

type runner struct{}

func (r *runner) Command(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	var configFilePath string
	return &cli.Command{
		Name:  "init",
		Usage: "Create .warnings.yaml if it doesn't exist",
		Description: `Create .warnings.yaml if it doesn't exist

$ warnings init

You can also pass configuration file path.

e.g.

$ warnings init .github/warnings.yaml
`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return r.action(logE, globalFlags, configFilePath)
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:        "config",
				Destination: &configFilePath,
			},
		},
	}
}

func (r *runner) action(logE *logrus.Entry, globalFlags *flag.GlobalFlags, configFilePath string) error {
	if err := log.Set(logE, globalFlags.LogLevel, globalFlags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	if configFilePath == "" {
		configFilePath = globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigFilePath
	}
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
