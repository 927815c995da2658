// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"regexp"
	"strings"
)

// Matches local merges ("Merge branch 'x' into 'master'") and pull request
// merges ("Merge pull request #1 from owner/x").
var mergeMessagePattern = regexp.MustCompile(
	`Merge (branch|pull request) '?([^'\n]+)'? (into|from) (?:'(.+)'|[^/\n]+/([^\n\\]+))`,
)

// Matches the default git message for local merges with an unquoted target.
var localMergePattern = regexp.MustCompile(`Merge branch '([^']+)' into ([^\s']+)`)

// MergeInfo describes the branches involved in a merge commit.
type MergeInfo struct {
	MergedBranch string
	TargetBranch string
}

// ParseMergeMessage extracts the merged branch from a commit message.
// Returns false if the message is not a merge.
func ParseMergeMessage(message string, currentBranch string) (MergeInfo, bool) {
	message = strings.ReplaceAll(message, `\n`, "\n")
	message = strings.ReplaceAll(message, `\`, "")

	matches := mergeMessagePattern.FindStringSubmatch(message)
	if matches == nil {
		return parseLocalMerge(message)
	}

	quotedTarget := matches[4]
	remainder := strings.TrimSpace(matches[5])
	switch {
	case quotedTarget != "" && quotedTarget == currentBranch:
		return MergeInfo{MergedBranch: matches[2], TargetBranch: quotedTarget}, true
	case remainder != "":
		return MergeInfo{MergedBranch: remainder, TargetBranch: currentBranch}, true
	case quotedTarget != "":
		return MergeInfo{MergedBranch: matches[2], TargetBranch: quotedTarget}, true
	default:
		return MergeInfo{}, false
	}
}

func parseLocalMerge(message string) (MergeInfo, bool) {
	matches := localMergePattern.FindStringSubmatch(message)
	if matches == nil {
		return MergeInfo{}, false
	}
	return MergeInfo{MergedBranch: matches[1], TargetBranch: matches[2]}, true
}
