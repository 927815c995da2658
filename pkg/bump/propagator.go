// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bump

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/config"
)

// Propagator writes a new version into the tracked files.
//
//counterfeiter:generate -o ../../mocks/propagator.go --fake-name Propagator . Propagator
type Propagator interface {
	Propagate(ctx context.Context, newVersion string, oldVersion string) error
}

// propagator reads the file rules from loader on every call.
type propagator struct {
	loader config.Loader
	log    *zap.Logger
}

// NewPropagator creates a new Propagator.
func NewPropagator(loader config.Loader, log *zap.Logger) Propagator {
	return &propagator{
		loader: loader,
		log:    log,
	}
}

// stagedFile is the rewritten content of a tracked file not yet written.
type stagedFile struct {
	path    string
	mode    os.FileMode
	content string
	changed bool
}

// Propagate rewrites all tracked files in memory first and writes them once every file was read.
// Missing files are skipped with a warning.
func (p *propagator) Propagate(ctx context.Context, newVersion string, oldVersion string) error {
	cfg, err := p.loader.Load(ctx)
	if stderrors.Is(err, config.ErrNoConfig) {
		p.log.Debug("no config, nothing to propagate")
		return nil
	}
	if err != nil {
		return errors.Wrap(ctx, err, "load file rules")
	}

	staged, err := p.stage(ctx, cfg.Files, newVersion, oldVersion)
	if err != nil {
		return errors.Wrap(ctx, err, "stage files")
	}

	for _, file := range staged {
		if !file.changed {
			p.log.Debug("file unchanged", zap.String("path", file.path))
			continue
		}
		if err := os.WriteFile(file.path, []byte(file.content), file.mode); err != nil {
			return errors.Wrapf(ctx, err, "write %s", file.path)
		}
		p.log.Info("updated version in file", zap.String("path", file.path), zap.String("version", newVersion))
	}
	return nil
}

// stage applies all rules in order. Rules for the same path operate on the already replaced content.
func (p *propagator) stage(ctx context.Context, rules []config.FileRule, newVersion string, oldVersion string) ([]*stagedFile, error) {
	result := []*stagedFile{}
	byPath := map[string]*stagedFile{}
	for _, rule := range rules {
		file, ok := byPath[rule.Path]
		if !ok {
			info, err := os.Stat(rule.Path)
			if os.IsNotExist(err) {
				p.log.Warn("tracked file does not exist, skipping", zap.String("path", rule.Path))
				continue
			}
			if err != nil {
				return nil, errors.Wrapf(ctx, err, "stat %s", rule.Path)
			}
			// #nosec G304 -- path comes from the settings file of the repository
			content, err := os.ReadFile(rule.Path)
			if err != nil {
				return nil, errors.Wrapf(ctx, err, "read %s", rule.Path)
			}
			file = &stagedFile{
				path:    rule.Path,
				mode:    info.Mode().Perm(),
				content: string(content),
			}
			byPath[rule.Path] = file
			result = append(result, file)
		}

		search, replace := rule.Resolve(newVersion, oldVersion)
		if !strings.Contains(file.content, search) {
			p.log.Debug("search not found", zap.String("path", rule.Path), zap.String("search", search))
			continue
		}
		file.content = strings.ReplaceAll(file.content, search, replace)
		file.changed = true
	}
	return result, nil
}
