// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	"regexp"
	"sort"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"
	"github.com/bborbe/errors"
)

const (
	// NewVersionPlaceholder is replaced with the bumped version.
	NewVersionPlaceholder = "{new_version}"
	// CurrentVersionPlaceholder is replaced with the version before the bump.
	CurrentVersionPlaceholder = "{current_version}"

	// DefaultTagName tags the plain version without prefix.
	DefaultTagName = NewVersionPlaceholder
)

// TagTemplate renders and recognizes version tags like "v{new_version}".
type TagTemplate struct {
	template string
	pattern  *regexp.Regexp
}

// NewTagTemplate compiles a tag template. It must contain {new_version}.
func NewTagTemplate(ctx context.Context, template string) (TagTemplate, error) {
	if template == "" {
		template = DefaultTagName
	}
	parts := strings.Split(template, NewVersionPlaceholder)
	if len(parts) != 2 {
		return TagTemplate{}, errors.Errorf(
			ctx,
			"tag template %q must contain %s exactly once",
			template,
			NewVersionPlaceholder,
		)
	}
	pattern := regexp.MustCompile(
		"^" + regexp.QuoteMeta(parts[0]) + `(\d+\.\d+\.\d+)` + regexp.QuoteMeta(parts[1]) + "$",
	)
	return TagTemplate{
		template: template,
		pattern:  pattern,
	}, nil
}

// Name returns the tag name for version.
func (t TagTemplate) Name(version string) string {
	return strings.Replace(t.template, NewVersionPlaceholder, version, 1)
}

// Parse extracts the version from a tag name matching the template.
func (t TagTemplate) Parse(tag string) (string, bool) {
	matches := t.pattern.FindStringSubmatch(tag)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// Latest returns the highest version among tags matching the template.
// Returns false if no tag matches.
func (t TagTemplate) Latest(tags []string) (string, bool) {
	type tagged struct {
		raw     string
		version *mmsemver.Version
	}
	candidates := make([]tagged, 0, len(tags))
	for _, tag := range tags {
		raw, ok := t.Parse(strings.TrimSpace(tag))
		if !ok {
			continue
		}
		version, err := mmsemver.StrictNewVersion(raw)
		if err != nil {
			// leading zeros or overflowing components
			version, err = mmsemver.NewVersion(raw)
			if err != nil {
				continue
			}
		}
		candidates = append(candidates, tagged{raw: raw, version: version})
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].version.LessThan(candidates[j].version)
	})
	return candidates[len(candidates)-1].raw, true
}
