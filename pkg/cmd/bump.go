// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/lock"
	"github.com/bborbe/auto-semver/pkg/scm"
)

//counterfeiter:generate -o ../../mocks/bump-command.go --fake-name BumpCommand . BumpCommand

// BumpCommand versions the repository after a merge.
type BumpCommand interface {
	Run(ctx context.Context, push bool, globalUser bool) error
}

// bumpCommand implements BumpCommand.
type bumpCommand struct {
	locker     lock.Locker
	configurer scm.UserConfigurer
	engine     engine.Engine
	out        io.Writer
	log        *zap.Logger
}

// NewBumpCommand creates a new BumpCommand. configurer may be nil.
func NewBumpCommand(
	locker lock.Locker,
	configurer scm.UserConfigurer,
	engine engine.Engine,
	out io.Writer,
	log *zap.Logger,
) BumpCommand {
	return &bumpCommand{
		locker:     locker,
		configurer: configurer,
		engine:     engine,
		out:        out,
		log:        log,
	}
}

// Run holds the repository lock while the engine runs and prints the new version.
// The versioning identity is only configured when pushing.
func (b *bumpCommand) Run(ctx context.Context, push bool, globalUser bool) error {
	if err := b.locker.Acquire(ctx); err != nil {
		return errors.Wrap(ctx, err, "acquire lock")
	}
	defer func() {
		if releaseErr := b.locker.Release(ctx); releaseErr != nil {
			b.log.Warn("release lock failed", zap.Error(releaseErr))
		}
	}()

	if push && b.configurer != nil {
		if err := b.configurer.ConfigureUser(ctx, globalUser); err != nil {
			return errors.Wrap(ctx, err, "configure user")
		}
	}

	version, err := b.engine.Run(ctx, push)
	if err != nil {
		return errors.Wrap(ctx, err, "run semver")
	}
	if _, err := fmt.Fprintln(b.out, version); err != nil {
		return errors.Wrap(ctx, err, "print version")
	}
	return nil
}
