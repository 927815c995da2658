// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"context"
	stderrors "errors"
	"sort"

	"github.com/bborbe/errors"
	gogitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// goGit implements SCM with the pure Go git implementation.
// The repository is opened lazily on first use.
type goGit struct {
	dir  string
	repo *gogitlib.Repository
}

// NewGoGit creates a SCM that operates on the repository containing dir without the git binary.
func NewGoGit(dir string) SCM {
	return &goGit{
		dir: dir,
	}
}

func (g *goGit) open(ctx context.Context) (*gogitlib.Repository, error) {
	if g.repo != nil {
		return g.repo, nil
	}
	repo, err := gogitlib.PlainOpenWithOptions(g.dir, &gogitlib.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, errors.Wrapf(ctx, err, "open repository %s", g.dir)
	}
	g.repo = repo
	return repo, nil
}

func (g *goGit) CurrentBranch(ctx context.Context) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	if !head.Name().IsBranch() {
		return plumbing.HEAD.String(), nil
	}
	return head.Name().Short(), nil
}

func (g *goGit) LatestCommitMessage(ctx context.Context) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(ctx, err, "get HEAD")
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", errors.Wrap(ctx, err, "get latest commit message")
	}
	return commit.Message, nil
}

func (g *goGit) RevisionHash(ctx context.Context, rev string) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", errors.Wrapf(ctx, err, "resolve revision %s", rev)
	}
	return hash.String(), nil
}

func (g *goGit) HeadHash(ctx context.Context) (string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(ctx, err, "resolve HEAD")
	}
	return head.Hash().String(), nil
}

func (g *goGit) Tags(ctx context.Context) ([]string, error) {
	repo, err := g.open(ctx)
	if err != nil {
		return nil, err
	}
	iter, err := repo.Tags()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	defer iter.Close()
	tags := []string{}
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	}); err != nil {
		return nil, errors.Wrap(ctx, err, "iterate tags")
	}
	sort.Strings(tags)
	return tags, nil
}

func (g *goGit) CreateTag(ctx context.Context, name string) error {
	repo, err := g.open(ctx)
	if err != nil {
		return err
	}
	head, err := repo.Head()
	if err != nil {
		return errors.Wrap(ctx, err, "resolve HEAD")
	}
	if _, err := repo.CreateTag(name, head.Hash(), nil); err != nil {
		return errors.Wrapf(ctx, err, "create tag %s", name)
	}
	return nil
}

func (g *goGit) PushBranch(ctx context.Context, branch string) error {
	ref := plumbing.NewBranchReferenceName(branch)
	spec := gitconfig.RefSpec(ref.String() + ":" + ref.String())
	if err := g.push(ctx, spec); err != nil {
		return errors.Wrapf(ctx, err, "push branch %s", branch)
	}
	return nil
}

func (g *goGit) PushTags(ctx context.Context) error {
	if err := g.push(ctx, gitconfig.RefSpec("refs/tags/*:refs/tags/*")); err != nil {
		return errors.Wrap(ctx, err, "push tags")
	}
	return nil
}

func (g *goGit) push(ctx context.Context, specs ...gitconfig.RefSpec) error {
	repo, err := g.open(ctx)
	if err != nil {
		return err
	}
	err = repo.PushContext(ctx, &gogitlib.PushOptions{
		RemoteName: RemoteName,
		RefSpecs:   specs,
	})
	if err != nil && !stderrors.Is(err, gogitlib.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}

// ConfigureUser writes the identity into the repository config.
// go-git has no writable global scope, so global is stored locally too.
func (g *goGit) ConfigureUser(ctx context.Context, global bool) error {
	repo, err := g.open(ctx)
	if err != nil {
		return err
	}
	cfg, err := repo.Config()
	if err != nil {
		return errors.Wrap(ctx, err, "read repository config")
	}
	cfg.User.Name = UserName
	cfg.User.Email = UserEmail
	if err := repo.SetConfig(cfg); err != nil {
		return errors.Wrap(ctx, err, "write repository config")
	}
	return nil
}
