package github_test

import (
	"context"
	"testing"

	"github.com/suzuki-shunsuke/warnings/pkg/github"
)

func TestNew(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		token   string
		baseURL string
		exp     string
	}{
		{name: "github.com", exp: "https://api.github.com/"},
		{name: "authenticated", token: "xxx", exp: "https://api.github.com/"},
		{name: "ghes", token: "xxx", baseURL: "https://ghes.example.com/api/v3/", exp: "https://ghes.example.com/api/v3/"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			client, err := github.New(context.Background(), d.token, d.baseURL)
			if err != nil {
				t.Fatal(err)
			}
			if got := client.BaseURL.String(); got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}
