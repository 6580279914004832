// Package cli defines the command line interface of warnings.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/describe"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/scan"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/tools"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "warnings",
		Usage:                 "Parse reports and console logs of build tools and static analysis tools. https://github.com/suzuki-shunsuke/warnings",
		Version:               version(ldFlags),
		Flags:                 globalFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			initcmd.New(logE, globalFlags),
			scan.New(logE, globalFlags),
			tools.New(logE, globalFlags),
			describe.New(logE, globalFlags),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

func version(ldFlags *urfave.LDFlags) string {
	if ldFlags == nil || ldFlags.Version == "" {
		return "dev"
	}
	if ldFlags.Commit == "" {
		return ldFlags.Version
	}
	return ldFlags.Version + " (" + ldFlags.Commit + ")"
}
