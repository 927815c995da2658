// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"

	"github.com/bborbe/errors"

	"github.com/bborbe/auto-semver/pkg/scm"
	"github.com/bborbe/auto-semver/pkg/semver"
)

// session memoizes source control queries for a single run.
type session struct {
	scm scm.SCM

	branch       string
	branchLoaded bool

	merge       semver.MergeInfo
	mergeFound  bool
	mergeLoaded bool
}

func newSession(scm scm.SCM) *session {
	return &session{
		scm: scm,
	}
}

func (s *session) CurrentBranch(ctx context.Context) (string, error) {
	if s.branchLoaded {
		return s.branch, nil
	}
	branch, err := s.scm.CurrentBranch(ctx)
	if err != nil {
		return "", errors.Wrap(ctx, err, "get current branch")
	}
	s.branch = branch
	s.branchLoaded = true
	return branch, nil
}

// Merge returns the merge described by the latest commit message.
func (s *session) Merge(ctx context.Context) (semver.MergeInfo, bool, error) {
	if s.mergeLoaded {
		return s.merge, s.mergeFound, nil
	}
	branch, err := s.CurrentBranch(ctx)
	if err != nil {
		return semver.MergeInfo{}, false, err
	}
	message, err := s.scm.LatestCommitMessage(ctx)
	if err != nil {
		return semver.MergeInfo{}, false, errors.Wrap(ctx, err, "get latest commit message")
	}
	s.merge, s.mergeFound = semver.ParseMergeMessage(message, branch)
	s.mergeLoaded = true
	return s.merge, s.mergeFound, nil
}
