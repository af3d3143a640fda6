// Package github provides authenticated GitHub API clients.
package github

import (
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gogithub "github.com/google/go-github/v68/github"

	"github.com/nathantilsley/toolbox/internal/platform/config"
)

// NewClient creates a GitHub API client from whatever credential the
// configuration carries. A personal access token takes precedence; otherwise
// a GitHub App installation transport is used, which handles JWT generation
// and token refresh automatically.
func NewClient(cfg config.Config) (*gogithub.Client, error) {
	if cfg.GitHubToken != "" {
		return gogithub.NewClient(nil).WithAuthToken(cfg.GitHubToken), nil
	}

	transport, err := ghinstallation.New(
		http.DefaultTransport, cfg.GitHubAppID, cfg.GitHubInstallationID, []byte(cfg.GitHubPrivateKey))
	if err != nil {
		return nil, fmt.Errorf("creating github installation transport: %w", err)
	}

	return gogithub.NewClient(&http.Client{Transport: transport}), nil
}
