// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	stderrors "errors"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/run"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/bump"
	"github.com/bborbe/auto-semver/pkg/config"
	"github.com/bborbe/auto-semver/pkg/scm"
	"github.com/bborbe/auto-semver/pkg/semver"
)

var (
	// ErrNoMergeFound is returned when the latest commit is not a merge.
	ErrNoMergeFound = stderrors.New("No merge found")
	// ErrNotMainBranch is returned when the current branch is not a main branch.
	ErrNotMainBranch = stderrors.New("Not merging into a main branch")
	// ErrNoGitFlow is returned when the branch carries no known git-flow prefix.
	ErrNoGitFlow = stderrors.New("No git flow branch found")
)

// QueryOptions control the version query output.
type QueryOptions struct {
	// Dot replaces "/" with "." in branch names.
	Dot         bool
	Format      semver.Format
	BuildNumber int
}

// Engine versions a repository after a git-flow merge.
//
//counterfeiter:generate -o ../../mocks/engine.go --fake-name Engine . Engine
type Engine interface {
	// Run bumps, tags and updates files for the merge at HEAD and returns the new version.
	Run(ctx context.Context, push bool) (string, error)
	// Version returns the released version at HEAD or a pre-release descriptor when ahead.
	Version(ctx context.Context, opts QueryOptions) (string, error)
}

type engine struct {
	cfg         config.Config
	scm         scm.SCM
	bumper      bump.Bumper
	tagTemplate semver.TagTemplate
	log         *zap.Logger
}

// New creates a new Engine.
func New(
	cfg config.Config,
	scm scm.SCM,
	bumper bump.Bumper,
	tagTemplate semver.TagTemplate,
	log *zap.Logger,
) Engine {
	return &engine{
		cfg:         cfg,
		scm:         scm,
		bumper:      bumper,
		tagTemplate: tagTemplate,
		log:         log,
	}
}

func (e *engine) Run(ctx context.Context, push bool) (string, error) {
	s := newSession(e.scm)

	branch, err := s.CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	e.log.Info("main branch", zap.String("branch", branch))

	merge, ok, err := s.Merge(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrNoMergeFound
	}
	if !collection.Contains(e.cfg.MainBranches, branch) {
		return "", ErrNotMainBranch
	}
	e.log.Info("merged branch", zap.String("branch", merge.MergedBranch))

	classified := merge.MergedBranch
	if e.cfg.ClassifyBranch == config.BranchSourceCurrent {
		classified = branch
	}
	category, ok := e.classify(classified)
	if !ok {
		return "", ErrNoGitFlow
	}
	e.log.Debug("version type", zap.Stringer("category", category), zap.String("branch", classified))

	current, _, err := e.currentVersion(ctx)
	if err != nil {
		return "", err
	}
	next, err := e.bumper.Bump(ctx, current, category, true, true)
	if err != nil {
		return "", errors.Wrap(ctx, err, "version repo")
	}
	e.log.Info("versioned repo", zap.String("from", current), zap.String("to", next))

	if !push {
		return next, nil
	}
	if err := run.Sequential(
		ctx,
		func(ctx context.Context) error {
			return e.scm.PushBranch(ctx, branch)
		},
		e.scm.PushTags,
	); err != nil {
		return "", errors.Wrap(ctx, err, "push")
	}
	return next, nil
}

func (e *engine) Version(ctx context.Context, opts QueryOptions) (string, error) {
	if err := opts.Format.Validate(ctx); err != nil {
		return "", errors.Wrap(ctx, err, "validate format")
	}

	current, tag, err := e.currentVersion(ctx)
	if err != nil {
		return "", err
	}
	if tag != "" {
		released, err := e.isHead(ctx, tag)
		if err != nil {
			return "", err
		}
		if released {
			return current, nil
		}
	}

	branch, err := e.scm.CurrentBranch(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	category, ok := e.classify(branch)
	if !ok {
		e.log.Debug("no git flow branch, using branch name", zap.String("branch", branch))
		return semver.BranchName(branch, opts.Dot), nil
	}
	next, err := e.bumper.Bump(ctx, current, category, false, false)
	if err != nil {
		return "", errors.Wrap(ctx, err, "compute next version")
	}
	return opts.Format.PreRelease(next, branch, opts.BuildNumber, opts.Dot), nil
}

func (e *engine) classify(branch string) (semver.Category, bool) {
	return semver.Classify(branch, e.cfg.MajorBranches, e.cfg.MinorBranches, e.cfg.PatchBranches)
}

// currentVersion returns the highest tagged version and its tag.
// Without matching tag the configured current_version is returned with an empty tag.
func (e *engine) currentVersion(ctx context.Context) (string, string, error) {
	tags, err := e.scm.Tags(ctx)
	if err != nil {
		return "", "", errors.Wrap(ctx, err, "list tags")
	}
	if version, ok := e.tagTemplate.Latest(tags); ok {
		return version, e.tagTemplate.Name(version), nil
	}
	if e.cfg.CurrentVersion != "" {
		return e.cfg.CurrentVersion, "", nil
	}
	return semver.DefaultVersion, "", nil
}

func (e *engine) isHead(ctx context.Context, tag string) (bool, error) {
	tagHash, err := e.scm.RevisionHash(ctx, tag)
	if err != nil {
		return false, errors.Wrapf(ctx, err, "resolve tag %s", tag)
	}
	headHash, err := e.scm.HeadHash(ctx)
	if err != nil {
		return false, errors.Wrap(ctx, err, "resolve HEAD")
	}
	return tagHash == headHash, nil
}
