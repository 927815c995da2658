// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"

	"github.com/bborbe/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/mocks"
	"github.com/bborbe/auto-semver/pkg/cli"
	"github.com/bborbe/auto-semver/pkg/cmd"
	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/semver"
)

var _ = Describe("CLI", func() {
	var (
		ctx    context.Context
		out    *bytes.Buffer
		errOut *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		errOut = &bytes.Buffer{}
	})

	DescribeTable("ExitCode",
		func(err error, expected int) {
			Expect(cli.ExitCode(err)).To(Equal(expected))
		},
		Entry("success", nil, 0),
		Entry("no merge", engine.ErrNoMergeFound, 1),
		Entry("not main branch", engine.ErrNotMainBranch, 2),
		Entry("no git flow", engine.ErrNoGitFlow, 3),
		Entry("wrapped no git flow", errors.Wrap(context.Background(), engine.ErrNoGitFlow, "run semver"), 3),
		Entry("other", stderrors.New("push rejected"), 128),
	)

	Describe("semver", func() {
		var (
			bumpCommand *mocks.BumpCommand
			createErr   error
			dirs        []string
		)

		BeforeEach(func() {
			bumpCommand = &mocks.BumpCommand{}
			createErr = nil
			dirs = nil
		})

		execute := func(args ...string) int {
			create := func(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.BumpCommand, error) {
				dirs = append(dirs, dir)
				return bumpCommand, createErr
			}
			return cli.Execute(ctx, cli.NewSemverCommand("1.2.3", "/repo", out, create), args, errOut)
		}

		It("pushes by default", func() {
			Expect(execute()).To(Equal(0))
			Expect(dirs).To(Equal([]string{"/repo"}))
			_, push, global := bumpCommand.RunArgsForCall(0)
			Expect(push).To(BeTrue())
			Expect(global).To(BeFalse())
		})

		It("maps the short flags", func() {
			Expect(execute("-n", "-g")).To(Equal(0))
			_, push, global := bumpCommand.RunArgsForCall(0)
			Expect(push).To(BeFalse())
			Expect(global).To(BeTrue())
		})

		It("maps the long flags", func() {
			Expect(execute("--no-push", "--global-user", "--debug")).To(Equal(0))
			_, push, global := bumpCommand.RunArgsForCall(0)
			Expect(push).To(BeFalse())
			Expect(global).To(BeTrue())
		})

		It("prints the version", func() {
			command := cli.NewSemverCommand("1.2.3", "/repo", out, nil)
			command.SetOut(out)
			Expect(cli.Execute(ctx, command, []string{"--version"}, errOut)).To(Equal(0))
			Expect(out.String()).To(ContainSubstring("1.2.3"))
		})

		It("exits 1 without merge", func() {
			bumpCommand.RunReturns(engine.ErrNoMergeFound)
			Expect(execute()).To(Equal(1))
			Expect(errOut.String()).To(BeEmpty())
		})

		It("exits 2 outside main branch", func() {
			bumpCommand.RunReturns(engine.ErrNotMainBranch)
			Expect(execute()).To(Equal(2))
		})

		It("exits 3 without git flow branch", func() {
			bumpCommand.RunReturns(engine.ErrNoGitFlow)
			Expect(execute()).To(Equal(3))
		})

		It("exits 128 when the command cannot be created", func() {
			createErr = stderrors.New("no config file found")
			Expect(execute()).To(Equal(128))
			Expect(bumpCommand.RunCallCount()).To(Equal(0))
		})

		It("prints the error with debug", func() {
			bumpCommand.RunReturns(stderrors.New("push rejected"))
			Expect(execute("-D")).To(Equal(128))
			Expect(errOut.String()).To(ContainSubstring("push rejected"))
		})

		It("exits 128 on unknown flags", func() {
			Expect(execute("--unknown")).To(Equal(128))
		})
	})

	Describe("semver-get-version", func() {
		var command *mocks.GetVersionCommand

		BeforeEach(func() {
			command = &mocks.GetVersionCommand{}
		})

		execute := func(args ...string) int {
			create := func(ctx context.Context, dir string, out io.Writer, log *zap.Logger) (cmd.GetVersionCommand, error) {
				return command, nil
			}
			return cli.Execute(ctx, cli.NewGetVersionCommand("1.2.3", "/repo", out, create), args, errOut)
		}

		It("passes no options by default", func() {
			Expect(execute()).To(Equal(0))
			_, opts := command.RunArgsForCall(0)
			Expect(opts).To(Equal(engine.QueryOptions{}))
		})

		It("maps the flags", func() {
			Expect(execute("-d", "-f", "maven", "-b", "12")).To(Equal(0))
			_, opts := command.RunArgsForCall(0)
			Expect(opts).To(Equal(engine.QueryOptions{Dot: true, Format: semver.FormatMaven, BuildNumber: 12}))
		})

		It("maps the long flags", func() {
			Expect(execute("--dot", "--format", "docker", "--build-number", "3", "--debug")).To(Equal(0))
			_, opts := command.RunArgsForCall(0)
			Expect(opts).To(Equal(engine.QueryOptions{Dot: true, Format: semver.FormatDocker, BuildNumber: 3}))
		})

		It("rejects unknown formats", func() {
			Expect(execute("--format", "rpm")).To(Equal(128))
			Expect(command.RunCallCount()).To(Equal(0))
		})

		It("exits 128 on failure", func() {
			command.RunReturns(stderrors.New("not a git repository"))
			Expect(execute()).To(Equal(128))
		})
	})
})
