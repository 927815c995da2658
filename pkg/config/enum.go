// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// BranchSource defines which branch name drives the bump category.
const (
	BranchSourceMerged  BranchSource = "merged"
	BranchSourceCurrent BranchSource = "current"
)

// AvailableBranchSources contains all valid branch source values.
var AvailableBranchSources = BranchSources{BranchSourceMerged, BranchSourceCurrent}

// BranchSource is a string-based enum for the classified branch.
type BranchSource string

func (b BranchSource) String() string {
	return string(b)
}

func (b BranchSource) Validate(ctx context.Context) error {
	if !AvailableBranchSources.Contains(b) {
		return errors.Wrapf(ctx, validation.Error, "unknown branch source '%s'", b)
	}
	return nil
}

// BranchSources is a collection of BranchSource values.
type BranchSources []BranchSource

func (b BranchSources) Contains(source BranchSource) bool {
	return collection.Contains(b, source)
}

// Backend selects the source-control implementation.
const (
	BackendGit   Backend = "git"
	BackendGoGit Backend = "go-git"
)

// AvailableBackends contains all valid backend values.
var AvailableBackends = Backends{BackendGit, BackendGoGit}

// Backend is a string-based enum for source-control backends.
type Backend string

func (b Backend) String() string {
	return string(b)
}

func (b Backend) Validate(ctx context.Context) error {
	if !AvailableBackends.Contains(b) {
		return errors.Wrapf(ctx, validation.Error, "unknown scm backend '%s'", b)
	}
	return nil
}

// Backends is a collection of Backend values.
type Backends []Backend

func (b Backends) Contains(backend Backend) bool {
	return collection.Contains(b, backend)
}
