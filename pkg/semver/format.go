// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Format defines how a pre-release version is rendered.
const (
	FormatNone   Format = ""
	FormatNPM    Format = "npm"
	FormatDocker Format = "docker"
	FormatMaven  Format = "maven"
)

// AvailableFormats contains all valid format values.
var AvailableFormats = Formats{FormatNone, FormatNPM, FormatDocker, FormatMaven}

// Format is a string-based enum for pre-release styles.
type Format string

func (f Format) String() string {
	return string(f)
}

func (f Format) Validate(ctx context.Context) error {
	if !AvailableFormats.Contains(f) {
		return errors.Wrapf(ctx, validation.Error, "unknown format '%s'", f)
	}
	return nil
}

// PreRelease renders nextVersion for branch in this format.
// FormatNone returns the branch name, with "/" replaced by "." if dot is set.
func (f Format) PreRelease(nextVersion string, branch string, buildNumber int, dot bool) string {
	switch f {
	case FormatNPM, FormatDocker:
		return fmt.Sprintf("%s-%s.%d", nextVersion, SanitizeBranch(branch), buildNumber)
	case FormatMaven:
		qualifier := "SNAPSHOT"
		if buildNumber != 0 {
			qualifier = strconv.Itoa(buildNumber)
		}
		return fmt.Sprintf("%s-%s-%s", nextVersion, SanitizeBranch(branch), qualifier)
	default:
		return BranchName(branch, dot)
	}
}

// Formats is a collection of Format values.
type Formats []Format

func (f Formats) Contains(format Format) bool {
	return collection.Contains(f, format)
}

// SanitizeBranch replaces "/" and "_" with "-".
func SanitizeBranch(branch string) string {
	return strings.NewReplacer("/", "-", "_", "-").Replace(branch)
}

// BranchName returns branch, with "/" replaced by "." if dot is set.
func BranchName(branch string, dot bool) string {
	if dot {
		return strings.ReplaceAll(branch, "/", ".")
	}
	return branch
}
