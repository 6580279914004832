package di_test

import (
	"testing"

	"github.com/suzuki-shunsuke/warnings/pkg/di"
)

func TestSecrets_SetFromEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		env  map[string]string
		exp  string
	}{
		{name: "empty", env: map[string]string{}, exp: ""},
		{name: "github token", env: map[string]string{"GITHUB_TOKEN": "gh_token"}, exp: "gh_token"},
		{
			name: "WARNINGS_GITHUB_TOKEN takes precedence",
			env:  map[string]string{"GITHUB_TOKEN": "gh_token", "WARNINGS_GITHUB_TOKEN": "warnings_token"},
			exp:  "warnings_token",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			s := &di.Secrets{}
			s.SetFromEnv(func(key string) string {
				return d.env[key]
			})
			if s.GitHubToken != d.exp {
				t.Errorf("GitHubToken: wanted %q, got %q", d.exp, s.GitHubToken)
			}
		})
	}
}

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name               string
		env                map[string]string
		expGitHubRepo      string
		expIsGitHubActions bool
	}{
		{
			name:               "empty",
			env:                map[string]string{},
			expGitHubRepo:      "",
			expIsGitHubActions: false,
		},
		{
			name: "all values set",
			env: map[string]string{
				"GITHUB_REPOSITORY": "owner/repo",
				"GITHUB_ACTIONS":    "true",
				"GHES_API_URL":      "https://ghes.example.com/api/v3",
			},
			expGitHubRepo:      "owner/repo",
			expIsGitHubActions: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			flags := &di.Flags{}
			di.SetEnv(flags, func(key string) string {
				return d.env[key]
			})
			if flags.GitHubRepository != d.expGitHubRepo {
				t.Errorf("GitHubRepository: wanted %q, got %q", d.expGitHubRepo, flags.GitHubRepository)
			}
			if flags.IsGitHubActions != d.expIsGitHubActions {
				t.Errorf("IsGitHubActions: wanted %v, got %v", d.expIsGitHubActions, flags.IsGitHubActions)
			}
		})
	}
}
