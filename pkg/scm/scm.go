// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"context"
)

const (
	// RemoteName is the remote used for pushes.
	RemoteName = "origin"
	// UserName is the identity configured for versioning commits and tags.
	UserName = "Semantic Versioner"
	// UserEmail belongs to UserName.
	UserEmail = "versioner@semver.com"
)

// SCM provides the source control operations needed to version a repository.
//
//counterfeiter:generate -o ../../mocks/scm.go --fake-name SCM . SCM
type SCM interface {
	// CurrentBranch returns the checked out branch, "HEAD" when detached.
	CurrentBranch(ctx context.Context) (string, error)
	// LatestCommitMessage returns the full message of the HEAD commit.
	LatestCommitMessage(ctx context.Context) (string, error)
	// RevisionHash returns the commit hash rev points to.
	RevisionHash(ctx context.Context, rev string) (string, error)
	HeadHash(ctx context.Context) (string, error)
	Tags(ctx context.Context) ([]string, error)
	// CreateTag creates a lightweight tag on HEAD.
	CreateTag(ctx context.Context, name string) error
	PushBranch(ctx context.Context, branch string) error
	PushTags(ctx context.Context) error
}

// UserConfigurer is implemented by SCMs that can set the versioning identity.
//
//counterfeiter:generate -o ../../mocks/user-configurer.go --fake-name UserConfigurer . UserConfigurer
type UserConfigurer interface {
	ConfigureUser(ctx context.Context, global bool) error
}
