// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scm

import (
	"context"
	"sort"

	"github.com/bborbe/errors"
)

// MemoryHeadHash is the HEAD hash of a new Memory.
const MemoryHeadHash = "0000000000000000000000000000000000000001"

// Memory is an in-memory SCM. Tags point to the hash HEAD had when they were created.
type Memory struct {
	Branch  string
	Message string
	Head    string
	// TagHashes maps tag name to commit hash.
	TagHashes map[string]string

	PushedBranches []string
	PushedTags     int
	// PushError is returned by every push when set.
	PushError error
}

// NewMemory creates a Memory on branch whose HEAD commit has message.
func NewMemory(branch string, message string, tags ...string) *Memory {
	m := &Memory{
		Branch:    branch,
		Message:   message,
		Head:      MemoryHeadHash,
		TagHashes: map[string]string{},
	}
	for _, tag := range tags {
		m.TagHashes[tag] = m.Head
	}
	return m
}

// Commit moves HEAD to hash with a new message.
func (m *Memory) Commit(hash string, message string) {
	m.Head = hash
	m.Message = message
}

func (m *Memory) CurrentBranch(ctx context.Context) (string, error) {
	return m.Branch, nil
}

func (m *Memory) LatestCommitMessage(ctx context.Context) (string, error) {
	return m.Message, nil
}

func (m *Memory) RevisionHash(ctx context.Context, rev string) (string, error) {
	if rev == "HEAD" {
		return m.Head, nil
	}
	hash, ok := m.TagHashes[rev]
	if !ok {
		return "", errors.Errorf(ctx, "unknown revision %s", rev)
	}
	return hash, nil
}

func (m *Memory) HeadHash(ctx context.Context) (string, error) {
	return m.Head, nil
}

func (m *Memory) Tags(ctx context.Context) ([]string, error) {
	tags := make([]string, 0, len(m.TagHashes))
	for tag := range m.TagHashes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

func (m *Memory) CreateTag(ctx context.Context, name string) error {
	if _, ok := m.TagHashes[name]; ok {
		return errors.Errorf(ctx, "tag %s already exists", name)
	}
	m.TagHashes[name] = m.Head
	return nil
}

func (m *Memory) PushBranch(ctx context.Context, branch string) error {
	if m.PushError != nil {
		return errors.Wrapf(ctx, m.PushError, "push branch %s", branch)
	}
	m.PushedBranches = append(m.PushedBranches, branch)
	return nil
}

func (m *Memory) PushTags(ctx context.Context) error {
	if m.PushError != nil {
		return errors.Wrap(ctx, m.PushError, "push tags")
	}
	m.PushedTags++
	return nil
}
