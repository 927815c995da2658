// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/mocks"
	"github.com/bborbe/auto-semver/pkg/bump"
	"github.com/bborbe/auto-semver/pkg/config"
	"github.com/bborbe/auto-semver/pkg/engine"
	"github.com/bborbe/auto-semver/pkg/scm"
	"github.com/bborbe/auto-semver/pkg/semver"
)

const patchMerge = "Merge branch 'patch/fix-bug' into 'master'"

var _ = Describe("Engine", func() {
	var (
		ctx         context.Context
		cfg         config.Config
		memory      *scm.Memory
		propagator  *mocks.Propagator
		tagTemplate semver.TagTemplate
		e           engine.Engine
		err         error
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Defaults()
		cfg.MainBranches = []string{"master"}
		cfg.MajorBranches = []string{"major"}
		cfg.MinorBranches = []string{"minor"}
		cfg.PatchBranches = []string{"patch"}
		memory = scm.NewMemory("master", patchMerge)
		propagator = &mocks.Propagator{}
		tagTemplate, err = semver.NewTagTemplate(ctx, "")
		Expect(err).NotTo(HaveOccurred())
	})

	JustBeforeEach(func() {
		bumper := bump.NewBumper(memory, propagator, tagTemplate, zap.NewNop())
		e = engine.New(cfg, memory, bumper, tagTemplate, zap.NewNop())
	})

	Describe("Run", func() {
		It("bumps a patch merge, tags and pushes", func() {
			version, err := e.Run(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("0.0.1"))

			tags, err := memory.Tags(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(tags).To(Equal([]string{"0.0.1"}))
			Expect(memory.PushedBranches).To(Equal([]string{"master"}))
			Expect(memory.PushedTags).To(Equal(1))

			Expect(propagator.PropagateCallCount()).To(Equal(1))
			_, newVersion, oldVersion := propagator.PropagateArgsForCall(0)
			Expect(newVersion).To(Equal("0.0.1"))
			Expect(oldVersion).To(Equal("0.0.0"))
		})

		It("does not push with push disabled", func() {
			version, err := e.Run(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("0.0.1"))
			Expect(memory.PushedBranches).To(BeEmpty())
			Expect(memory.PushedTags).To(Equal(0))
		})

		It("bumps from the highest tag", func() {
			memory.TagHashes["1.2.0"] = "a"
			memory.TagHashes["1.10.0"] = "b"
			memory.TagHashes["1.9.3"] = "c"

			version, err := e.Run(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("1.10.1"))
		})

		Context("without tags", func() {
			BeforeEach(func() {
				cfg.CurrentVersion = "2.3.4"
			})

			It("bumps from current_version", func() {
				memory.Message = "Merge pull request #7 from owner/minor/feature-x"

				version, err := e.Run(ctx, false)
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("2.4.0"))
			})
		})

		It("bumps major for a pull request merge", func() {
			memory.TagHashes["1.4.2"] = "a"
			memory.Message = "Merge pull request #1 from Org/major/rewrite"

			version, err := e.Run(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("2.0.0"))
		})

		Context("with tag template", func() {
			BeforeEach(func() {
				tagTemplate, err = semver.NewTagTemplate(ctx, "v{new_version}")
				Expect(err).NotTo(HaveOccurred())
				memory.TagHashes["v1.0.0"] = "a"
				memory.TagHashes["v1.2.0"] = "b"
				memory.TagHashes["v1.10.0"] = "c"
				memory.TagHashes["2.0.0"] = "d"
			})

			It("uses only matching tags", func() {
				version, err := e.Run(ctx, false)
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.10.1"))
				Expect(memory.TagHashes).To(HaveKey("v1.10.1"))
			})
		})

		It("fails with ErrNoMergeFound for a regular commit", func() {
			memory.Message = "fix typo"
			_, err := e.Run(ctx, true)
			Expect(stderrors.Is(err, engine.ErrNoMergeFound)).To(BeTrue())
			Expect(memory.TagHashes).To(BeEmpty())
		})

		It("fails with ErrNotMainBranch on other branches", func() {
			memory.Branch = "develop"
			memory.Message = "Merge branch 'patch/fix-bug' into 'develop'"
			_, err := e.Run(ctx, true)
			Expect(stderrors.Is(err, engine.ErrNotMainBranch)).To(BeTrue())
		})

		It("fails with ErrNoGitFlow for unknown prefixes", func() {
			memory.Message = "Merge branch 'docs/readme' into 'master'"
			_, err := e.Run(ctx, true)
			Expect(stderrors.Is(err, engine.ErrNoGitFlow)).To(BeTrue())
			Expect(propagator.PropagateCallCount()).To(Equal(0))
		})

		It("fails when push fails", func() {
			memory.PushError = stderrors.New("rejected")
			_, err := e.Run(ctx, true)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("rejected"))
			Expect(stderrors.Is(err, engine.ErrNoMergeFound)).To(BeFalse())
			Expect(memory.PushedTags).To(Equal(0))
		})

		Context("classifying the current branch", func() {
			BeforeEach(func() {
				cfg.ClassifyBranch = config.BranchSourceCurrent
				cfg.MainBranches = []string{"master", "minor/next"}
			})

			It("uses the current branch prefix", func() {
				memory.Branch = "minor/next"
				memory.Message = "Merge branch 'patch/fix-bug' into 'minor/next'"
				version, err := e.Run(ctx, false)
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("0.1.0"))
			})

			It("fails with ErrNoGitFlow when the current branch has no prefix", func() {
				_, err := e.Run(ctx, false)
				Expect(stderrors.Is(err, engine.ErrNoGitFlow)).To(BeTrue())
			})
		})

		It("updates the tracked files through the propagator", func() {
			tempDir, err := os.MkdirTemp("", "engine-test-*")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(tempDir)
			Expect(os.WriteFile(filepath.Join(tempDir, config.CFGFileName), []byte(`[bumpversion]
current_version = 0.0.0

[bumpversion:file:VERSION]

[semver]
main_branches = master
patch_branches = patch
`), 0600)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(tempDir, "VERSION"), []byte("0.0.0\n"), 0600)).To(Succeed())

			loader := config.NewLoader(tempDir)
			loaded, err := loader.Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			bumper := bump.NewBumper(memory, bump.NewPropagator(loader, zap.NewNop()), tagTemplate, zap.NewNop())
			e = engine.New(loaded, memory, bumper, tagTemplate, zap.NewNop())

			version, err := e.Run(ctx, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("0.0.1"))

			content, err := os.ReadFile(filepath.Join(tempDir, "VERSION"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(Equal("0.0.1\n"))
			content, err = os.ReadFile(filepath.Join(tempDir, config.CFGFileName))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("current_version = 0.0.1"))
		})
	})

	Describe("Run with fake scm", func() {
		var fake *mocks.SCM

		BeforeEach(func() {
			fake = &mocks.SCM{}
			fake.CurrentBranchReturns("master", nil)
			fake.LatestCommitMessageReturns(patchMerge, nil)
			fake.TagsReturns([]string{}, nil)
		})

		JustBeforeEach(func() {
			bumper := bump.NewBumper(fake, propagator, tagTemplate, zap.NewNop())
			e = engine.New(cfg, fake, bumper, tagTemplate, zap.NewNop())
		})

		It("queries the branch once per run", func() {
			_, err := e.Run(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.CurrentBranchCallCount()).To(Equal(1))
			Expect(fake.LatestCommitMessageCallCount()).To(Equal(1))
		})

		It("pushes the branch before the tags", func() {
			_, err := e.Run(ctx, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(fake.PushBranchCallCount()).To(Equal(1))
			_, branch := fake.PushBranchArgsForCall(0)
			Expect(branch).To(Equal("master"))
			Expect(fake.PushTagsCallCount()).To(Equal(1))
			Expect(fake.Invocations()).To(HaveKey("PushTags"))
		})

		It("does not push tags when the branch push fails", func() {
			fake.PushBranchReturns(stderrors.New("rejected"))
			_, err := e.Run(ctx, true)
			Expect(err).To(HaveOccurred())
			Expect(fake.PushTagsCallCount()).To(Equal(0))
		})

		It("fails when the branch query fails", func() {
			fake.CurrentBranchReturns("", stderrors.New("not a git repository"))
			_, err := e.Run(ctx, true)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not a git repository"))
		})
	})

	Describe("Version", func() {
		BeforeEach(func() {
			memory.TagHashes["1.0.0"] = scm.MemoryHeadHash
		})

		It("returns the tag at HEAD", func() {
			version, err := e.Version(ctx, engine.QueryOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal("1.0.0"))
		})

		Context("when HEAD is ahead", func() {
			BeforeEach(func() {
				memory.Commit("0000000000000000000000000000000000000002", "work")
				memory.Branch = "patch/branch"
			})

			It("returns a docker pre-release", func() {
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatDocker})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.0.1-patch-branch.0"))
			})

			It("returns a npm pre-release with build number", func() {
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatNPM, BuildNumber: 42})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.0.1-patch-branch.42"))
			})

			It("returns a maven snapshot", func() {
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatMaven})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.0.1-patch-branch-SNAPSHOT"))
			})

			It("returns a maven build", func() {
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatMaven, BuildNumber: 7})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.0.1-patch-branch-7"))
			})

			It("returns the branch name without format", func() {
				version, err := e.Version(ctx, engine.QueryOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("patch/branch"))
			})

			It("returns the dotted branch name", func() {
				version, err := e.Version(ctx, engine.QueryOptions{Dot: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("patch.branch"))
			})

			It("ignores the format for unknown prefixes", func() {
				memory.Branch = "docs/readme"
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatDocker, Dot: true})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("docs.readme"))
			})

			It("sanitizes underscores", func() {
				memory.Branch = "minor/new_api"
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatDocker, BuildNumber: 3})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("1.1.0-minor-new-api.3"))
			})

			It("neither tags nor touches files", func() {
				_, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatDocker})
				Expect(err).NotTo(HaveOccurred())
				Expect(memory.TagHashes).To(HaveLen(1))
				Expect(propagator.PropagateCallCount()).To(Equal(0))
			})
		})

		Context("without tags", func() {
			BeforeEach(func() {
				delete(memory.TagHashes, "1.0.0")
				cfg.CurrentVersion = "0.3.0"
			})

			It("counts the repository as ahead", func() {
				memory.Branch = "patch/first"
				version, err := e.Version(ctx, engine.QueryOptions{Format: semver.FormatDocker})
				Expect(err).NotTo(HaveOccurred())
				Expect(version).To(Equal("0.3.1-patch-first.0"))
			})
		})

		It("rejects unknown formats", func() {
			_, err := e.Version(ctx, engine.QueryOptions{Format: "rpm"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown format"))
		})
	})
})
