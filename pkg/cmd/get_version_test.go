// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd_test

import (
	"bytes"
	"context"
	stderrors "errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/auto-semver/mocks"
	"github.com/bborbe/auto-semver/pkg/cmd"
	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/semver"
)

var _ = Describe("GetVersionCommand", func() {
	var (
		ctx        context.Context
		mockEngine *mocks.Engine
		out        *bytes.Buffer
		command    cmd.GetVersionCommand
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockEngine = &mocks.Engine{}
		out = &bytes.Buffer{}
		command = cmd.NewGetVersionCommand(mockEngine, out)
	})

	It("prints the version", func() {
		mockEngine.VersionReturns("1.0.1-patch-branch.0", nil)
		opts := engine.QueryOptions{Format: semver.FormatDocker}

		Expect(command.Run(ctx, opts)).To(Succeed())
		Expect(out.String()).To(Equal("1.0.1-patch-branch.0\n"))
		_, passed := mockEngine.VersionArgsForCall(0)
		Expect(passed).To(Equal(opts))
	})

	It("returns engine errors", func() {
		mockEngine.VersionReturns("", stderrors.New("no repository"))
		Expect(command.Run(ctx, engine.QueryOptions{})).NotTo(Succeed())
		Expect(out.String()).To(BeEmpty())
	})
})
