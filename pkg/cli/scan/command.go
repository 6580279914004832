// Package scan implements the 'warnings scan' command.
package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
	ctrl "github.com/suzuki-shunsuke/warnings/pkg/controller/scan"
	"github.com/suzuki-shunsuke/warnings/pkg/di"
	"github.com/suzuki-shunsuke/warnings/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{}
	return r.Command(logE, globalFlags)
}

type runner struct{}

func (r *runner) Command(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command { //nolint:funlen
	flags := &di.Flags{GlobalFlags: globalFlags}
	return &cli.Command{
		Name:    "scan",
		Aliases: []string{"run"},
		Usage:   "Parse reports and console logs of build tools",
		Description: `Parse reports and console logs of build tools and output the found issues.

If no argument is passed, warnings searches files by files of the configuration file.

$ warnings scan

You can also pass files as arguments.

e.g.

$ warnings scan --tool findbugs target/findbugsXml.xml

Console logs can be passed via the standard input.

$ make 2>&1 | warnings scan --stdin --tool gcc

The default tool is "all". It combines every built-in tool
(puppetlint, eclipse, gcc, tsc, pylint, findbugs, checkstyle and eslint)
and each of them parses only inputs in its own format,
so XML and JSON reports go to findbugs, checkstyle and eslint and console logs go to the others.
Run "warnings tools" to see the tools.
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, logE, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "tool",
				Aliases:     []string{"t"},
				Usage:       "Tool ID. Run 'warnings tools' to list tools",
				Sources:     cli.EnvVars("WARNINGS_TOOL"),
				Destination: &flags.Tool,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Output format. One of text, json, and sarif",
				Value:       ctrl.FormatText,
				Destination: &flags.Format,
			},
			&cli.StringFlag{
				Name:        "encoding",
				Usage:       "Encoding of inputs such as windows-1252 and Shift_JIS. The default is UTF-8",
				Destination: &flags.Encoding,
			},
			&cli.StringFlag{
				Name:        "min-severity",
				Usage:       "Output only issues as severe as this or more. One of WARNING_LOW, WARNING_NORMAL, WARNING_HIGH, and ERROR",
				Sources:     cli.EnvVars("WARNINGS_MIN_SEVERITY"),
				Destination: &flags.MinSeverity,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "Locale of issue descriptions",
				Sources:     cli.EnvVars("WARNINGS_LOCALE"),
				Destination: &flags.Locale,
			},
			&cli.StringFlag{
				Name:        "strip-prefix",
				Usage:       "Remove the prefix from file names in issues",
				Destination: &flags.StripPrefix,
			},
			&cli.StringSliceFlag{
				Name:        "catalog",
				Usage:       "A path of a description catalog file",
				Destination: &flags.Catalogs,
			},
			&cli.IntFlag{
				Name:        "concurrency",
				Usage:       "The maximum number of inputs parsed concurrently",
				Destination: &flags.Concurrency,
			},
			&cli.BoolFlag{
				Name:        "unique",
				Usage:       "Remove duplicate issues",
				Destination: &flags.Unique,
			},
			&cli.BoolFlag{
				Name:        "check",
				Usage:       "Exit with a non-zero status code if issues are found",
				Destination: &flags.Check,
			},
			&cli.BoolFlag{
				Name:        "stdin",
				Usage:       "Parse the standard input as a console log",
				Destination: &flags.Stdin,
			},
			&cli.BoolFlag{
				Name:        "review",
				Usage:       "Create review comments on the pull request",
				Destination: &flags.Review,
			},
			&cli.StringFlag{
				Name:        "repo-owner",
				Usage:       "GitHub repository owner",
				Sources:     cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
				Destination: &flags.RepoOwner,
			},
			&cli.StringFlag{
				Name:        "repo-name",
				Usage:       "GitHub repository name",
				Destination: &flags.RepoName,
			},
			&cli.StringFlag{
				Name:        "sha",
				Usage:       "Commit SHA to be reviewed",
				Destination: &flags.SHA,
			},
			&cli.IntFlag{
				Name:        "pr",
				Usage:       "GitHub pull request number",
				Destination: &flags.PR,
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "files",
				Max:         -1,
				Destination: &flags.Args,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, logE *logrus.Entry, flags *di.Flags) error {
	if err := log.Set(logE, flags.LogLevel, flags.LogColor); err != nil {
		return err //nolint:wrapcheck
	}
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags.PWD = pwd
	di.SetEnv(flags, os.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, logE, flags, secrets, &di.IO{ //nolint:wrapcheck
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}
