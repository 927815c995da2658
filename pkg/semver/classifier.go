// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"strings"

	"github.com/bborbe/collection"
)

// BranchPrefix returns the git-flow prefix of a branch name.
// For "patch/fix-bug" and "owner/patch/fix-bug" this is "patch".
// A name without "/" is its own prefix.
func BranchPrefix(branch string) string {
	branch = strings.TrimRight(branch, "/")
	idx := strings.LastIndex(branch, "/")
	if idx < 0 {
		return branch
	}
	head := branch[:idx]
	return head[strings.LastIndex(head, "/")+1:]
}

// Classify maps a branch to a bump category by its prefix.
// Major is checked before minor before patch.
func Classify(branch string, major, minor, patch []string) (Category, bool) {
	prefix := BranchPrefix(branch)
	if prefix == "" {
		return 0, false
	}
	switch {
	case collection.Contains(major, prefix):
		return Major, true
	case collection.Contains(minor, prefix):
		return Minor, true
	case collection.Contains(patch, prefix):
		return Patch, true
	default:
		return 0, false
	}
}
