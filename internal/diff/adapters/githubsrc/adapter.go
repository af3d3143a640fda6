// Package githubsrc fetches comparison inputs from the GitHub API.
package githubsrc

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v68/github"

	"github.com/nathantilsley/toolbox/internal/diff/domain"
)

// Adapter implements ports.SourcePort by reading file contents and pull
// request file listings through an authenticated GitHub client.
type Adapter struct {
	client *github.Client
	logger *slog.Logger
}

// New creates a new GitHub source adapter.
func New(client *github.Client, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		logger: logger,
	}
}

// FetchFile returns the file contents at the given ref. A file missing at
// that ref comes back as empty content with no error, so callers can diff
// against added or deleted files.
func (a *Adapter) FetchFile(ctx context.Context, owner, repo, path, ref string) (string, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	fileContent, _, resp, err := a.client.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			a.logger.Debug("file absent at ref", "path", path, "ref", ref)
			return "", nil
		}
		return "", fmt.Errorf("fetching file %s@%s: %w", path, ref, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%s@%s is a directory, not a file", path, ref)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("decoding file content: %w", err)
	}
	return content, nil
}

// PullRequestFiles lists the PR's changed files and fetches each one's
// base and head contents. Binary or otherwise unfetchable files are
// skipped with a warning rather than failing the whole comparison.
func (a *Adapter) PullRequestFiles(ctx context.Context, pr domain.PRRef) ([]domain.FilePair, error) {
	if pr.BaseRef == "" || pr.HeadRef == "" {
		details, _, err := a.client.PullRequests.Get(ctx, pr.Owner, pr.Repo, pr.Number)
		if err != nil {
			return nil, fmt.Errorf("fetching pull request #%d: %w", pr.Number, err)
		}
		pr.BaseRef = details.GetBase().GetRef()
		pr.HeadRef = details.GetHead().GetSHA() // SHA pins the exact revision
	}

	files, err := a.listChangedFiles(ctx, pr)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("found changed files in PR", "count", len(files))

	var pairs []domain.FilePair
	for _, file := range files {
		pair := domain.FilePair{Path: file.GetFilename()}

		if file.GetStatus() != "added" {
			oldPath := file.GetFilename()
			if prev := file.GetPreviousFilename(); prev != "" {
				oldPath = prev // renamed file
			}
			pair.Old, err = a.FetchFile(ctx, pr.Owner, pr.Repo, oldPath, pr.BaseRef)
			if err != nil {
				a.logger.Warn("skipping file", "path", oldPath, "ref", pr.BaseRef, "error", err)
				continue
			}
		}
		if file.GetStatus() != "removed" {
			pair.New, err = a.FetchFile(ctx, pr.Owner, pr.Repo, file.GetFilename(), pr.HeadRef)
			if err != nil {
				a.logger.Warn("skipping file", "path", file.GetFilename(), "ref", pr.HeadRef, "error", err)
				continue
			}
		}

		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// listChangedFiles returns all files modified in the PR.
func (a *Adapter) listChangedFiles(ctx context.Context, pr domain.PRRef) ([]*github.CommitFile, error) {
	var all []*github.CommitFile
	opts := &github.ListOptions{PerPage: 100}

	for {
		files, resp, err := a.client.PullRequests.ListFiles(ctx, pr.Owner, pr.Repo, pr.Number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing PR files: %w", err)
		}

		all = append(all, files...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}
