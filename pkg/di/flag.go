package di

import (
	"github.com/suzuki-shunsuke/warnings/pkg/cli/flag"
)

// Flags holds the command line flags of the scan command.
type Flags struct {
	*flag.GlobalFlags

	Tool        string
	Format      string
	Encoding    string
	MinSeverity string
	Locale      string
	StripPrefix string
	Catalogs    []string
	Concurrency int
	Unique      bool
	Check       bool
	Stdin       bool
	Review      bool

	IsGitHubActions bool

	RepoOwner string
	RepoName  string
	SHA       string
	PR        int

	GitHubRepository string
	GitHubAPIURL     string
	GitHubEventPath  string
	GHESAPIURL       string

	PWD  string
	Args []string
}

const defaultGitHubAPIURL = "https://api.github.com"

// GetAPIURL returns the API URL of GitHub Enterprise Server.
// It returns an empty string for github.com.
func (f *Flags) GetAPIURL() string {
	if f.GHESAPIURL != "" {
		return f.GHESAPIURL
	}
	if f.GitHubAPIURL == "" || f.GitHubAPIURL == defaultGitHubAPIURL {
		return ""
	}
	return f.GitHubAPIURL
}
