// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factory_test

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/bborbe/auto-semver/pkg/config"
	"github.com/bborbe/auto-semver/pkg/factory"
	"github.com/bborbe/auto-semver/pkg/scm"
)

var _ = Describe("Factory", func() {
	var (
		ctx     context.Context
		tempDir string
		out     *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tempDir, err = os.MkdirTemp("", "factory-test-*")
		Expect(err).NotTo(HaveOccurred())
		out = &bytes.Buffer{}
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("CreateSCM", func() {
		It("returns the git binary backend by default", func() {
			s := factory.CreateSCM(config.Defaults(), tempDir)
			Expect(s).NotTo(BeNil())
			_, ok := s.(scm.UserConfigurer)
			Expect(ok).To(BeTrue())
		})

		It("returns the go-git backend", func() {
			cfg := config.Defaults()
			cfg.Backend = config.BackendGoGit
			Expect(factory.CreateSCM(cfg, tempDir)).NotTo(BeNil())
		})
	})

	Describe("CreateBumpCommand", func() {
		It("fails without settings file", func() {
			_, err := factory.CreateBumpCommand(ctx, tempDir, out, zap.NewNop())
			Expect(stderrors.Is(err, config.ErrNoConfig)).To(BeTrue())
		})

		It("returns a command with settings file", func() {
			err := os.WriteFile(filepath.Join(tempDir, config.CFGFileName), []byte("[semver]\nmain_branches = master\n"), 0600)
			Expect(err).NotTo(HaveOccurred())
			command, err := factory.CreateBumpCommand(ctx, tempDir, out, zap.NewNop())
			Expect(err).NotTo(HaveOccurred())
			Expect(command).NotTo(BeNil())
		})
	})

	Describe("CreateGetVersionCommand", func() {
		It("falls back to defaults without settings file", func() {
			command, err := factory.CreateGetVersionCommand(ctx, tempDir, out, zap.NewNop())
			Expect(err).NotTo(HaveOccurred())
			Expect(command).NotTo(BeNil())
		})

		It("fails for an invalid settings file", func() {
			err := os.WriteFile(filepath.Join(tempDir, config.CFGFileName), []byte("[bumpversion]\ntag_name = release\n"), 0600)
			Expect(err).NotTo(HaveOccurred())
			_, err = factory.CreateGetVersionCommand(ctx, tempDir, out, zap.NewNop())
			Expect(err).To(HaveOccurred())
		})
	})
})
