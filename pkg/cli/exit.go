// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/logger"
)

// Exit codes of the semver commands.
const (
	ExitOK            = 0
	ExitNoMerge       = 1
	ExitNotMainBranch = 2
	ExitNoGitFlow     = 3
	ExitFailure       = 128
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, engine.ErrNoMergeFound):
		return ExitNoMerge
	case stderrors.Is(err, engine.ErrNotMainBranch):
		return ExitNotMainBranch
	case stderrors.Is(err, engine.ErrNoGitFlow):
		return ExitNoGitFlow
	default:
		return ExitFailure
	}
}

// Execute runs command with args and returns the exit code.
// Errors are logged. With --debug the error is also written to errOut with its stack.
func Execute(ctx context.Context, command *cobra.Command, args []string, errOut io.Writer) int {
	command.SetArgs(args)
	err := command.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	debug, _ := command.Flags().GetBool(debugFlag)
	log, logErr := logger.New(debug)
	if logErr != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()
	log.Error(err.Error())
	if debug {
		fmt.Fprintf(errOut, "%+v\n", err)
	}
	return ExitCode(err)
}
