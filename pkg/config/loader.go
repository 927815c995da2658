// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bborbe/errors"
	"github.com/go-ini/ini"
	"github.com/pelletier/go-toml/v2"

	"github.com/bborbe/auto-semver/pkg/semver"
)

const (
	// TOMLFileName is preferred over CFGFileName when both exist.
	TOMLFileName = ".bumpversion.toml"
	// CFGFileName is the INI style settings file.
	CFGFileName = ".bumpversion.cfg"
)

// ErrNoConfig is returned when neither settings file exists.
var ErrNoConfig = stderrors.New("no config file found")

// Loader loads configuration from a file.
//
//counterfeiter:generate -o ../../mocks/config-loader.go --fake-name Loader . Loader
type Loader interface {
	Load(ctx context.Context) (Config, error)
}

// fileLoader implements Loader by reading from a settings file in dir.
type fileLoader struct {
	dir string
}

// NewLoader creates a Loader that reads .bumpversion.toml or .bumpversion.cfg from dir.
func NewLoader(dir string) Loader {
	return &fileLoader{
		dir: dir,
	}
}

// Load reads the settings file, merges with defaults, validates, and returns the config.
func (l *fileLoader) Load(ctx context.Context) (Config, error) {
	path, isTOML, err := l.find()
	if err != nil {
		return Config{}, errors.Wrap(ctx, err, "find config file")
	}

	var settings Settings
	if isTOML {
		settings, err = readTOML(ctx, path)
	} else {
		settings, err = readINI(ctx, path)
	}
	if err != nil {
		return Config{}, errors.Wrapf(ctx, err, "parse config file %s", path)
	}

	cfg := FromSettings(settings)
	cfg.Path = path
	cfg.Files = resolveFilePaths(l.dir, cfg.Files)

	// Persist the version record in the settings file unless it is tracked already
	if _, ok := settings.Get(SectionBumpVersion, "current_version"); ok && !tracks(cfg.Files, path) {
		cfg.Files = append(cfg.Files, versionRecordRule(path, isTOML))
	}

	if err := cfg.Validate(ctx); err != nil {
		return Config{}, errors.Wrap(ctx, err, "validate config")
	}

	return cfg, nil
}

func (l *fileLoader) find() (string, bool, error) {
	tomlPath := filepath.Join(l.dir, TOMLFileName)
	if isFile(tomlPath) {
		return tomlPath, true, nil
	}
	cfgPath := filepath.Join(l.dir, CFGFileName)
	if isFile(cfgPath) {
		return cfgPath, false, nil
	}
	return "", false, ErrNoConfig
}

// FromSettings builds a Config from raw settings on top of the defaults.
func FromSettings(settings Settings) Config {
	cfg := Defaults()
	cfg.Settings = settings
	cfg.CurrentVersion = settings.GetOrDefault(SectionBumpVersion, "current_version", cfg.CurrentVersion)
	cfg.TagName = settings.GetOrDefault(SectionBumpVersion, "tag_name", cfg.TagName)
	cfg.MainBranches = settings.List(SectionSemver, "main_branches")
	cfg.MajorBranches = settings.List(SectionSemver, "major_branches")
	cfg.MinorBranches = settings.List(SectionSemver, "minor_branches")
	cfg.PatchBranches = settings.List(SectionSemver, "patch_branches")
	if value, ok := settings.Get(SectionSemver, "classify_branch"); ok && value != "" {
		cfg.ClassifyBranch = BranchSource(value)
	}
	if value, ok := settings.Get(SectionSemver, "scm"); ok && value != "" {
		cfg.Backend = Backend(value)
	}
	cfg.Files = FileRules(settings)
	return cfg
}

// FileRules returns the tracked file rules in section name order.
// Missing search or replace default to {current_version} and {new_version}.
func FileRules(settings Settings) []FileRule {
	rules := []FileRule{}
	for _, name := range settings.SectionNames() {
		if !strings.HasPrefix(name, FileSectionPrefix) {
			continue
		}
		rules = append(rules, FileRule{
			Path:    strings.TrimPrefix(name, FileSectionPrefix),
			Search:  settings.GetOrDefault(name, "search", semver.CurrentVersionPlaceholder),
			Replace: settings.GetOrDefault(name, "replace", semver.NewVersionPlaceholder),
		})
	}
	return rules
}

func resolveFilePaths(dir string, rules []FileRule) []FileRule {
	result := make([]FileRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Path != "" && !filepath.IsAbs(rule.Path) {
			rule.Path = filepath.Join(dir, rule.Path)
		}
		result = append(result, rule)
	}
	return result
}

func tracks(rules []FileRule, path string) bool {
	for _, rule := range rules {
		if filepath.Clean(rule.Path) == filepath.Clean(path) {
			return true
		}
	}
	return false
}

func versionRecordRule(path string, isTOML bool) FileRule {
	if isTOML {
		return FileRule{
			Path:    path,
			Search:  `current_version = "` + semver.CurrentVersionPlaceholder + `"`,
			Replace: `current_version = "` + semver.NewVersionPlaceholder + `"`,
		}
	}
	return FileRule{
		Path:    path,
		Search:  "current_version = " + semver.CurrentVersionPlaceholder,
		Replace: "current_version = " + semver.NewVersionPlaceholder,
	}
}

func readTOML(ctx context.Context, path string) (Settings, error) {
	// #nosec G304 -- path is the settings file in the repository
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "read toml")
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(ctx, err, "unmarshal toml")
	}
	settings := Settings{}
	for name, value := range raw {
		table, ok := value.(map[string]any)
		if !ok {
			continue
		}
		section := map[string]string{}
		for key, entry := range table {
			section[key] = stringify(entry)
		}
		settings[name] = section
	}
	return settings, nil
}

// stringify renders toml values the way the INI format would spell them.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, entry := range v {
			parts = append(parts, stringify(entry))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}

func readINI(ctx context.Context, path string) (Settings, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
		PreserveSurroundedQuote:    true,
		InsensitiveKeys:            true,
	}, path)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "load ini")
	}
	settings := Settings{}
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		settings[section.Name()] = section.KeysHash()
	}
	return settings, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
