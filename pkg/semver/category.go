// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

// Category selects which version component a bump increments.
// The numeric value is the component index.
type Category int

const (
	Major Category = iota
	Minor
	Patch
)

// Index returns the version component index the category bumps.
func (c Category) Index() int {
	return int(c)
}

func (c Category) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return "unknown"
	}
}
