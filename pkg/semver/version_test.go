// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/auto-semver/pkg/semver"
)

var _ = Describe("Version", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("ParseVersion", func() {
		It("parses 1.2.3", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Len()).To(Equal(3))
			Expect(version.String()).To(Equal("1.2.3"))
		})

		It("accepts more than three components", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3.4")
			Expect(err).NotTo(HaveOccurred())
			Expect(version.Len()).To(Equal(4))
		})

		It("returns error for empty string", func() {
			_, err := semver.ParseVersion(ctx, "")
			Expect(err).To(HaveOccurred())
		})

		It("returns error for non-numeric component", func() {
			_, err := semver.ParseVersion(ctx, "1.x.3")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid version"))
		})

		It("returns error for tag prefix", func() {
			_, err := semver.ParseVersion(ctx, "v1.2.3")
			Expect(err).To(HaveOccurred())
		})

		It("returns error for empty component", func() {
			_, err := semver.ParseVersion(ctx, "1..3")
			Expect(err).To(HaveOccurred())
		})
	})

	DescribeTable("BumpString",
		func(current string, category semver.Category, expected string) {
			result, err := semver.BumpString(ctx, current, category)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(expected))
		},
		Entry("patch 0.0.0", "0.0.0", semver.Patch, "0.0.1"),
		Entry("patch 0.0.1", "0.0.1", semver.Patch, "0.0.2"),
		Entry("patch 0.1.0", "0.1.0", semver.Patch, "0.1.1"),
		Entry("patch 1.2.3", "1.2.3", semver.Patch, "1.2.4"),
		Entry("patch 0.0.10", "0.0.10", semver.Patch, "0.0.11"),
		Entry("patch 10.0.0", "10.0.0", semver.Patch, "10.0.1"),
		Entry("minor 0.0.0", "0.0.0", semver.Minor, "0.1.0"),
		Entry("minor 1.2.3", "1.2.3", semver.Minor, "1.3.0"),
		Entry("minor 0.0.10", "0.0.10", semver.Minor, "0.1.0"),
		Entry("minor 0.10.0", "0.10.0", semver.Minor, "0.11.0"),
		Entry("minor 10.0.0", "10.0.0", semver.Minor, "10.1.0"),
		Entry("major 0.0.0", "0.0.0", semver.Major, "1.0.0"),
		Entry("major 0.0.1", "0.0.1", semver.Major, "1.0.0"),
		Entry("major 1.2.3", "1.2.3", semver.Major, "2.0.0"),
		Entry("major 0.10.0", "0.10.0", semver.Major, "1.0.0"),
		Entry("major 10.0.0", "10.0.0", semver.Major, "11.0.0"),
		Entry("resets trailing components", "1.2.3.4", semver.Minor, "1.3.0.0"),
		Entry("keeps leading components verbatim", "01.2.3", semver.Patch, "01.2.4"),
		Entry("parses leading zeros as integers", "1.2.09", semver.Patch, "1.2.10"),
		Entry(
			"handles components beyond 64 bit",
			"1.2.99999999999999999999",
			semver.Patch,
			"1.2.100000000000000000000",
		),
	)

	Describe("Bump", func() {
		It("returns error when the version is too short for the category", func() {
			version, err := semver.ParseVersion(ctx, "1.2")
			Expect(err).NotTo(HaveOccurred())

			_, err = version.Bump(ctx, semver.Patch)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cannot bump patch"))
		})

		It("does not modify the receiver", func() {
			version, err := semver.ParseVersion(ctx, "1.2.3")
			Expect(err).NotTo(HaveOccurred())

			bumped, err := version.Bump(ctx, semver.Major)
			Expect(err).NotTo(HaveOccurred())
			Expect(bumped.String()).To(Equal("2.0.0"))
			Expect(version.String()).To(Equal("1.2.3"))
		})
	})

	Describe("Category", func() {
		It("maps categories to component indices", func() {
			Expect(semver.Major.Index()).To(Equal(0))
			Expect(semver.Minor.Index()).To(Equal(1))
			Expect(semver.Patch.Index()).To(Equal(2))
		})

		It("returns string representation", func() {
			Expect(semver.Major.String()).To(Equal("major"))
			Expect(semver.Minor.String()).To(Equal("minor"))
			Expect(semver.Patch.String()).To(Equal("patch"))
		})
	})
})
