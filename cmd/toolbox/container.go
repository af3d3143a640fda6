// Package main provides the toolbox server: text diffing, image filters,
// code generators and text utilities behind a JSON API.
package main

import (
	"fmt"
	"log/slog"

	"github.com/nathantilsley/toolbox/internal/diff/adapters/chromahl"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/githubsrc"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/intraline"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/patchdiff"
	"github.com/nathantilsley/toolbox/internal/diff/app"
	"github.com/nathantilsley/toolbox/internal/diff/ports"
	"github.com/nathantilsley/toolbox/internal/httpapi"
	"github.com/nathantilsley/toolbox/internal/platform/config"
	ghclient "github.com/nathantilsley/toolbox/internal/platform/github"
)

// Container holds all application dependencies.
type Container struct {
	Config      config.Config
	Logger      *slog.Logger
	DiffService ports.CompareUseCase
	Handler     *httpapi.Handler
}

// NewContainer builds and wires all dependencies.
func NewContainer(cfg config.Config, log *slog.Logger) (*Container, error) {
	// Optional source adapter: the GitHub-backed endpoints stay off
	// unless credentials are configured.
	var source ports.SourcePort
	if cfg.GitHubConfigured() {
		client, err := ghclient.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating github client: %w", err)
		}
		source = githubsrc.New(client, log)
		log.Info("github source enabled")
	} else {
		log.Info("github not configured, /v1/diff/github disabled")
	}

	diffService := app.NewService(
		patchdiff.New(),
		intraline.New(),
		chromahl.New(cfg.HighlightStyle),
		source, // nil when not configured
		log,
		cfg.MaxDiffLines,
	)

	handler := httpapi.New(diffService, log, cfg.MaxBodyBytes, cfg.MaxImagePixels)

	return &Container{
		Config:      cfg,
		Logger:      log,
		DiffService: diffService,
		Handler:     handler,
	}, nil
}
