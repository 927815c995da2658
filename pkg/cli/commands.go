// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"io"

	"github.com/bborbe/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/cmd"
	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/logger"
	"github.com/bborbe/auto-semver/pkg/semver"
)

const debugFlag = "debug"

// BumpCommandFactory creates the bump command for the repository in dir.
type BumpCommandFactory func(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.BumpCommand, error)

// GetVersionCommandFactory creates the version query for the repository in dir.
type GetVersionCommandFactory func(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.GetVersionCommand, error)

// NewSemverCommand returns the "semver" command versioning the repository in dir.
func NewSemverCommand(version string, dir string, out io.Writer, create BumpCommandFactory) *cobra.Command {
	var (
		noPush     bool
		globalUser bool
		debug      bool
	)
	command := &cobra.Command{
		Use:           "semver",
		Short:         "Bump Semantic Version.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			log, err := logger.New(debug)
			if err != nil {
				return errors.Wrap(ctx, err, "create logger")
			}
			defer func() { _ = log.Sync() }()

			bumpCommand, err := create(ctx, dir, out, log)
			if err != nil {
				return errors.Wrap(ctx, err, "create bump command")
			}
			return bumpCommand.Run(ctx, !noPush, globalUser)
		},
	}
	command.Flags().BoolVarP(&noPush, "no-push", "n", false, "Do not try to push")
	command.Flags().BoolVarP(&globalUser, "global-user", "g", false, "Set git user at a global level, helps in jenkins")
	command.Flags().BoolVarP(&debug, debugFlag, "D", false, "Sets logging level to DEBUG")
	return command
}

// NewGetVersionCommand returns the "semver-get-version" command.
func NewGetVersionCommand(version string, dir string, out io.Writer, create GetVersionCommandFactory) *cobra.Command {
	var (
		dot         bool
		format      string
		buildNumber int
		debug       bool
	)
	command := &cobra.Command{
		Use:           "semver-get-version",
		Short:         "Get the version of the current commit.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			opts := engine.QueryOptions{
				Dot:         dot,
				Format:      semver.Format(format),
				BuildNumber: buildNumber,
			}
			if err := opts.Format.Validate(ctx); err != nil {
				return errors.Wrap(ctx, err, "invalid --format")
			}
			log, err := logger.New(debug)
			if err != nil {
				return errors.Wrap(ctx, err, "create logger")
			}
			defer func() { _ = log.Sync() }()

			getVersionCommand, err := create(ctx, dir, out, log)
			if err != nil {
				return errors.Wrap(ctx, err, "create get version command")
			}
			return getVersionCommand.Run(ctx, opts)
		},
	}
	command.Flags().BoolVarP(&dot, "dot", "d", false, "Switch out / for . to be used in docker tag")
	command.Flags().StringVarP(&format, "format", "f", "", "Format for pre-release version syntax (npm, maven, docker)")
	command.Flags().IntVarP(&buildNumber, "build-number", "b", 0, "Build number, used in pre-releases")
	command.Flags().BoolVarP(&debug, debugFlag, "D", false, "Sets logging level to DEBUG")
	return command
}
