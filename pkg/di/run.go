// Package di wires the dependencies of the warnings commands.
package di

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/warnings/pkg/config"
	"github.com/suzuki-shunsuke/warnings/pkg/controller/scan"
	"github.com/suzuki-shunsuke/warnings/pkg/description"
	"github.com/suzuki-shunsuke/warnings/pkg/github"
	"github.com/suzuki-shunsuke/warnings/pkg/tool"
)

// IO holds the standard streams of a command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the scan command.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets, stdio *IO) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	fs := afero.NewOsFs()

	cfg, registry, err := Load(fs, flags.Config, flags.Catalogs)
	if err != nil {
		return err
	}

	review := setupReview(fs, logE, flags)
	var prService github.PullRequestsService
	if review != nil {
		gh, err := github.New(ctx, secrets.GitHubToken, flags.GetAPIURL())
		if err != nil {
			return fmt.Errorf("create a GitHub client: %w", err)
		}
		prService = gh.PullRequests
	}

	ctrl := scan.New(fs, cfg, registry, prService, buildParam(flags, review, stdio))
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// Load reads the configuration file and creates the tool registry.
// Description catalogs given by extraCatalogs override the ones of the configuration file.
func Load(fs afero.Fs, configFilePath string, extraCatalogs []string) (*config.Config, *tool.Registry, error) {
	configPath, err := config.NewFinder(fs).Find(configFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, configPath); err != nil {
		return nil, nil, fmt.Errorf("read configuration file: %w", err)
	}
	catalogs, err := description.Load(fs, catalogPaths(configPath, cfg.Catalogs, extraCatalogs))
	if err != nil {
		return nil, nil, fmt.Errorf("load description catalogs: %w", err)
	}
	registry, err := tool.FromConfig(cfg, &tool.Options{
		UseRankAsPriority: cfg.UseRankAsPriority(),
		Catalogs:          catalogs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create tools: %w", err)
	}
	return cfg, registry, nil
}

// catalogPaths resolves catalogs of the configuration file relative to the configuration file.
func catalogPaths(configPath string, cfgCatalogs, extraCatalogs []string) []string {
	paths := make([]string, 0, len(cfgCatalogs)+len(extraCatalogs))
	dir := filepath.Dir(configPath)
	for _, p := range cfgCatalogs {
		if configPath != "" && !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		paths = append(paths, p)
	}
	return append(paths, extraCatalogs...)
}

func buildParam(flags *Flags, review *scan.Review, stdio *IO) *scan.Param {
	return &scan.Param{
		Files:       flags.Args,
		Tool:        flags.Tool,
		Format:      flags.Format,
		Encoding:    flags.Encoding,
		MinSeverity: flags.MinSeverity,
		Locale:      flags.Locale,
		StripPrefix: flags.StripPrefix,
		PWD:         flags.PWD,
		Concurrency: flags.Concurrency,
		Unique:      flags.Unique,
		Check:       flags.Check,
		Stdin:       flags.Stdin,
		Review:      review,
		Input:       stdio.Stdin,
		Stdout:      stdio.Stdout,
		Stderr:      stdio.Stderr,
	}
}
