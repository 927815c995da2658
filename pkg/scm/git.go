// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"
)

// git implements SCM by running the git binary.
type git struct {
	dir string
}

// NewGit creates a SCM that runs git in dir.
func NewGit(dir string) SCM {
	return &git{
		dir: dir,
	}
}

// CurrentBranch returns the name of the current branch.
func (g *git) CurrentBranch(ctx context.Context) (string, error) {
	output, err := g.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	return strings.TrimSpace(output), nil
}

// LatestCommitMessage returns the log entry of the HEAD commit.
func (g *git) LatestCommitMessage(ctx context.Context) (string, error) {
	output, err := g.run(ctx, "log", "-1")
	if err != nil {
		return "", errors.Wrap(ctx, err, "get latest commit message")
	}
	return output, nil
}

func (g *git) RevisionHash(ctx context.Context, rev string) (string, error) {
	output, err := g.run(ctx, "rev-list", "-n", "1", rev)
	if err != nil {
		return "", errors.Wrapf(ctx, err, "resolve revision %s", rev)
	}
	return strings.TrimSpace(output), nil
}

func (g *git) HeadHash(ctx context.Context) (string, error) {
	output, err := g.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", errors.Wrap(ctx, err, "resolve HEAD")
	}
	return strings.TrimSpace(output), nil
}

func (g *git) Tags(ctx context.Context) ([]string, error) {
	output, err := g.run(ctx, "tag", "-l")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "list tags")
	}
	tags := []string{}
	for _, line := range strings.Split(output, "\n") {
		if tag := strings.TrimSpace(line); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (g *git) CreateTag(ctx context.Context, name string) error {
	if _, err := g.run(ctx, "tag", name); err != nil {
		return errors.Wrapf(ctx, err, "create tag %s", name)
	}
	return nil
}

func (g *git) PushBranch(ctx context.Context, branch string) error {
	if _, err := g.run(ctx, "push", RemoteName, branch); err != nil {
		return errors.Wrapf(ctx, err, "push branch %s", branch)
	}
	return nil
}

func (g *git) PushTags(ctx context.Context) error {
	if _, err := g.run(ctx, "push", RemoteName, "--tags"); err != nil {
		return errors.Wrap(ctx, err, "push tags")
	}
	return nil
}

// ConfigureUser sets user.email and user.name in the global or local git config.
func (g *git) ConfigureUser(ctx context.Context, global bool) error {
	scope := "--local"
	if global {
		scope = "--global"
	}
	if _, err := g.run(ctx, "config", scope, "user.email", UserEmail); err != nil {
		return errors.Wrap(ctx, err, "configure user email")
	}
	if _, err := g.run(ctx, "config", scope, "user.name", UserName); err != nil {
		return errors.Wrap(ctx, err, "configure user name")
	}
	return nil
}

// run executes git with args and returns stdout. Stderr is part of the error.
func (g *git) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	// #nosec G204 -- arguments are branch and tag names of the versioned repository
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(ctx, err, "git %s failed: %s", args[0], strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
