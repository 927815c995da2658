// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/bborbe/errors"
)

// FileName is created in the repository while a bump runs.
const FileName = ".auto-semver.lock"

// ErrLocked is returned by Acquire when another bump holds the lock.
var ErrLocked = stderrors.New("another instance is already running")

//counterfeiter:generate -o ../../mocks/locker.go --fake-name Locker . Locker

// Locker serializes bumps of the same repository.
type Locker interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}

// locker holds an exclusive flock on FileName.
type locker struct {
	path string
	file *os.File
}

// NewLocker creates a Locker for the repository in dir.
func NewLocker(dir string) Locker {
	return &locker{
		path: filepath.Join(dir, FileName),
	}
}

// Acquire takes the lock without blocking.
func (l *locker) Acquire(ctx context.Context) error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return errors.Wrap(ctx, err, "open lock file")
	}

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(file.Fd()),
		syscall.LOCK_EX|syscall.LOCK_NB,
	); err != nil {
		_ = file.Close()
		if pid, ok := l.holder(); ok {
			return errors.Wrapf(ctx, ErrLocked, "lock %s held by pid %d", l.path, pid)
		}
		return errors.Wrapf(ctx, ErrLocked, "lock %s held", l.path)
	}

	if err := writePID(file); err != nil {
		_ = file.Close()
		return errors.Wrap(ctx, err, "write pid to lock file")
	}

	l.file = file
	return nil
}

// Release unlocks and removes the lock file. Releasing an unheld lock is a no-op.
func (l *locker) Release(ctx context.Context) error {
	if l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := syscall.Flock( //nolint:gosec // G115: File descriptor conversion is safe
		int(l.file.Fd()),
		syscall.LOCK_UN,
	); err != nil {
		_ = l.file.Close()
		return errors.Wrap(ctx, err, "unlock file")
	}
	if err := l.file.Close(); err != nil {
		return errors.Wrap(ctx, err, "close lock file")
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(ctx, err, "remove lock file")
	}
	return nil
}

// holder returns the pid stored in the lock file.
func (l *locker) holder() (int, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func writePID(file *os.File) error {
	if err := file.Truncate(0); err != nil {
		return err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(file, "%d\n", os.Getpid()); err != nil {
		return err
	}
	return file.Sync()
}
