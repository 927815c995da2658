// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"strings"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"

	"github.com/bborbe/auto-semver/pkg/semver"
)

const (
	// SectionBumpVersion holds current_version and tag_name.
	SectionBumpVersion = "bumpversion"
	// SectionSemver holds the branch lists.
	SectionSemver = "semver"
	// FileSectionPrefix starts every tracked file section, followed by the file path.
	FileSectionPrefix = "bumpversion:file:"
)

// FileRule describes a literal search/replace applied to a tracked file.
// Search and Replace may contain {current_version} and {new_version}.
type FileRule struct {
	Path    string
	Search  string
	Replace string
}

// Resolve substitutes the version placeholders in search and replace.
func (f FileRule) Resolve(newVersion string, currentVersion string) (string, string) {
	return resolvePlaceholders(f.Search, newVersion, currentVersion),
		resolvePlaceholders(f.Replace, newVersion, currentVersion)
}

func resolvePlaceholders(value string, newVersion string, currentVersion string) string {
	value = strings.ReplaceAll(value, semver.NewVersionPlaceholder, newVersion)
	return strings.ReplaceAll(value, semver.CurrentVersionPlaceholder, currentVersion)
}

// Config holds the auto-semver configuration.
type Config struct {
	Path           string
	CurrentVersion string
	TagName        string
	MainBranches   []string
	MajorBranches  []string
	MinorBranches  []string
	PatchBranches  []string
	ClassifyBranch BranchSource
	Backend        Backend
	Files          []FileRule
	Settings       Settings
}

// Defaults returns a Config with all default values.
func Defaults() Config {
	return Config{
		CurrentVersion: semver.DefaultVersion,
		TagName:        semver.DefaultTagName,
		MainBranches:   []string{},
		MajorBranches:  []string{},
		MinorBranches:  []string{},
		PatchBranches:  []string{},
		ClassifyBranch: BranchSourceMerged,
		Backend:        BackendGit,
		Files:          []FileRule{},
		Settings:       Settings{},
	}
}

// Validate validates the config fields.
func (c Config) Validate(ctx context.Context) error {
	return validation.All{
		validation.Name("classify_branch", c.ClassifyBranch),
		validation.Name("scm", c.Backend),
		validation.Name("current_version", validation.HasValidationFunc(func(ctx context.Context) error {
			if _, err := semver.ParseVersion(ctx, c.CurrentVersion); err != nil {
				return errors.Wrapf(ctx, validation.Error, "invalid current_version '%s'", c.CurrentVersion)
			}
			return nil
		})),
		validation.Name("tag_name", validation.HasValidationFunc(func(ctx context.Context) error {
			if _, err := semver.NewTagTemplate(ctx, c.TagName); err != nil {
				return errors.Wrapf(ctx, validation.Error, "invalid tag_name '%s'", c.TagName)
			}
			return nil
		})),
		validation.Name("files", validation.HasValidationFunc(func(ctx context.Context) error {
			for _, file := range c.Files {
				if file.Path == "" {
					return errors.Wrapf(ctx, validation.Error, "file section without path")
				}
				if file.Search == "" {
					return errors.Wrapf(ctx, validation.Error, "empty search for file %s", file.Path)
				}
			}
			return nil
		})),
	}.Validate(ctx)
}
