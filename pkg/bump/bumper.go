// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bump

import (
	"context"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/scm"
	"github.com/bborbe/auto-semver/pkg/semver"
)

// Bumper computes the next version and optionally tags the repository and updates tracked files.
//
//counterfeiter:generate -o ../../mocks/bumper.go --fake-name Bumper . Bumper
type Bumper interface {
	Bump(ctx context.Context, current string, category semver.Category, tagRepo bool, updateFiles bool) (string, error)
}

type bumper struct {
	scm         scm.SCM
	propagator  Propagator
	tagTemplate semver.TagTemplate
	log         *zap.Logger
}

// NewBumper creates a new Bumper tagging through scm with names rendered by tagTemplate.
func NewBumper(
	scm scm.SCM,
	propagator Propagator,
	tagTemplate semver.TagTemplate,
	log *zap.Logger,
) Bumper {
	return &bumper{
		scm:         scm,
		propagator:  propagator,
		tagTemplate: tagTemplate,
		log:         log,
	}
}

func (b *bumper) Bump(ctx context.Context, current string, category semver.Category, tagRepo bool, updateFiles bool) (string, error) {
	next, err := semver.BumpString(ctx, current, category)
	if err != nil {
		return "", errors.Wrapf(ctx, err, "bump %s", current)
	}
	b.log.Debug("computed version",
		zap.String("current", current),
		zap.Stringer("category", category),
		zap.String("next", next),
	)

	if tagRepo && next != current {
		tag := b.tagTemplate.Name(next)
		if err := b.scm.CreateTag(ctx, tag); err != nil {
			return "", errors.Wrapf(ctx, err, "tag %s", tag)
		}
		b.log.Info("created tag", zap.String("tag", tag))
	}

	if updateFiles {
		if err := b.propagator.Propagate(ctx, next, current); err != nil {
			return "", errors.Wrap(ctx, err, "propagate version")
		}
	}
	return next, nil
}
