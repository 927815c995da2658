// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/errors"

	"github.com/bborbe/auto-semver/pkg/engine"
)

//counterfeiter:generate -o ../../mocks/get-version-command.go --fake-name GetVersionCommand . GetVersionCommand

// GetVersionCommand prints the released or pre-release version of HEAD.
type GetVersionCommand interface {
	Run(ctx context.Context, opts engine.QueryOptions) error
}

type getVersionCommand struct {
	engine engine.Engine
	out    io.Writer
}

// NewGetVersionCommand creates a new GetVersionCommand.
func NewGetVersionCommand(engine engine.Engine, out io.Writer) GetVersionCommand {
	return &getVersionCommand{
		engine: engine,
		out:    out,
	}
}

func (g *getVersionCommand) Run(ctx context.Context, opts engine.QueryOptions) error {
	version, err := g.engine.Version(ctx, opts)
	if err != nil {
		return errors.Wrap(ctx, err, "get version")
	}
	if _, err := fmt.Fprintln(g.out, version); err != nil {
		return errors.Wrap(ctx, err, "print version")
	}
	return nil
}
