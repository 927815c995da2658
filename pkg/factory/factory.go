// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/bump"
	"github.com/bborbe/auto-semver/pkg/cmd"
	"github.com/bborbe/auto-semver/pkg/config"
	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/lock"
	"github.com/bborbe/auto-semver/pkg/scm"
	"github.com/bborbe/auto-semver/pkg/semver"
)

// CreateSCM returns the source control backend configured in cfg.
func CreateSCM(cfg config.Config, dir string) scm.SCM {
	if cfg.Backend == config.BackendGoGit {
		return scm.NewGoGit(dir)
	}
	return scm.NewGit(dir)
}

// CreateEngine wires an Engine for the repository in dir.
func CreateEngine(
	ctx context.Context,
	cfg config.Config,
	loader config.Loader,
	sourceControl scm.SCM,
	log *zap.Logger,
) (engine.Engine, error) {
	tagTemplate, err := semver.NewTagTemplate(ctx, cfg.TagName)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create tag template")
	}
	bumper := bump.NewBumper(
		sourceControl,
		bump.NewPropagator(loader, log.Named("propagator")),
		tagTemplate,
		log.Named("bumper"),
	)
	return engine.New(cfg, sourceControl, bumper, tagTemplate, log.Named("engine")), nil
}

// CreateBumpCommand loads the settings in dir and wires the bump command.
func CreateBumpCommand(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.BumpCommand, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "load config")
	}
	sourceControl := CreateSCM(cfg, dir)
	e, err := CreateEngine(ctx, cfg, loader, sourceControl, log)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create engine")
	}
	configurer, _ := sourceControl.(scm.UserConfigurer)
	return cmd.NewBumpCommand(
		lock.NewLocker(dir),
		configurer,
		e,
		out,
		log,
	), nil
}

// CreateGetVersionCommand wires the version query. Without settings file the defaults are used.
func CreateGetVersionCommand(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.GetVersionCommand, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load(ctx)
	if stderrors.Is(err, config.ErrNoConfig) {
		log.Debug("no config found, using defaults", zap.String("dir", dir))
		cfg, err = config.Defaults(), nil
	}
	if err != nil {
		return nil, errors.Wrap(ctx, err, "load config")
	}
	e, err := CreateEngine(ctx, cfg, loader, CreateSCM(cfg, dir), log)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create engine")
	}
	return cmd.NewGetVersionCommand(e, out), nil
}
