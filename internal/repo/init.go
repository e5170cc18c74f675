// Package repo initializes a git repository over a freshly scaffolded root.
package repo

import (
	"errors"
	"fmt"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/stencildev/stencil/internal/logger"
)

const (
	authorName  = "stencil"
	authorEmail = "stencil@localhost"
)

// Init creates a git repository at root, stages everything the scaffold
// produced, and records an initial commit. A root that is already a git
// repository is left alone. Init runs after a successful scaffold; its
// failure never undoes written files.
func Init(root, manifestName string, log *logger.Logger) error {
	r, err := git.PlainInit(root, false)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			log.With("root", root).Warn("root is already a git repository, skipping init")
			return nil
		}
		return fmt.Errorf("init repository at %q: %w", root, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("stage scaffolded files: %w", err)
	}

	message := "scaffold " + manifestName
	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("create initial commit: %w", err)
	}

	log.With("root", root).Info("initialized git repository")
	return nil
}
