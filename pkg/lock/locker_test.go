// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock_test

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/auto-semver/pkg/lock"
)

var _ = Describe("Locker", func() {
	var (
		ctx      context.Context
		tmpDir   string
		lockPath string
		locker   lock.Locker
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tmpDir, err = os.MkdirTemp("", "lock-test-*")
		Expect(err).NotTo(HaveOccurred())
		lockPath = filepath.Join(tmpDir, lock.FileName)
		locker = lock.NewLocker(tmpDir)
	})

	AfterEach(func() {
		_ = locker.Release(ctx)
		_ = os.RemoveAll(tmpDir)
	})

	It("writes the pid into the lock file", func() {
		Expect(locker.Acquire(ctx)).To(Succeed())

		data, err := os.ReadFile(lockPath)
		Expect(err).NotTo(HaveOccurred())
		pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
		Expect(err).NotTo(HaveOccurred())
		Expect(pid).To(Equal(os.Getpid()))
	})

	It("rejects a second bump while locked", func() {
		Expect(locker.Acquire(ctx)).To(Succeed())

		err := lock.NewLocker(tmpDir).Acquire(ctx)
		Expect(err).To(HaveOccurred())
		Expect(stderrors.Is(err, lock.ErrLocked)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(strconv.Itoa(os.Getpid())))
	})

	It("rejects without pid when the lock file holds garbage", func() {
		Expect(os.WriteFile(lockPath, []byte("not-a-number\n"), 0600)).To(Succeed())
		file, err := os.OpenFile(lockPath, os.O_RDWR, 0600)
		Expect(err).NotTo(HaveOccurred())
		Expect(syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)).To(Succeed())
		DeferCleanup(func() {
			_ = syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
			_ = file.Close()
		})

		err = locker.Acquire(ctx)
		Expect(stderrors.Is(err, lock.ErrLocked)).To(BeTrue())
		Expect(err.Error()).NotTo(ContainSubstring("pid"))
	})

	It("removes the lock file on release", func() {
		Expect(locker.Acquire(ctx)).To(Succeed())
		Expect(locker.Release(ctx)).To(Succeed())

		_, err := os.Stat(lockPath)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("can be acquired again after release", func() {
		for i := 0; i < 3; i++ {
			Expect(locker.Acquire(ctx)).To(Succeed())
			Expect(locker.Release(ctx)).To(Succeed())
		}
		other := lock.NewLocker(tmpDir)
		Expect(other.Acquire(ctx)).To(Succeed())
		Expect(other.Release(ctx)).To(Succeed())
	})

	It("ignores release without acquire", func() {
		Expect(locker.Release(ctx)).To(Succeed())
	})

	It("fails when the directory does not exist", func() {
		Expect(lock.NewLocker(filepath.Join(tmpDir, "missing")).Acquire(ctx)).NotTo(Succeed())
	})
})
