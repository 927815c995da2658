// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package semver

import (
	"context"
	"math/big"
	"strings"

	"github.com/bborbe/errors"
)

// DefaultVersion is used when neither a tag nor the settings file carry a version.
const DefaultVersion = "0.0.0"

// Version is a dotted sequence of non-negative decimal integers like "1.2.3".
// Components are kept as written so untouched components survive a bump verbatim.
type Version struct {
	components []string
}

// ParseVersion parses a dotted numeric version.
// Returns error if any component is empty or contains a non-digit.
func ParseVersion(ctx context.Context, value string) (Version, error) {
	if value == "" {
		return Version{}, errors.Errorf(ctx, "invalid version: empty")
	}
	components := strings.Split(value, ".")
	for _, component := range components {
		if !isDigits(component) {
			return Version{}, errors.Errorf(ctx, "invalid version: %s", value)
		}
	}
	return Version{components: components}, nil
}

// Len returns the number of components.
func (v Version) Len() int {
	return len(v.components)
}

// String returns the components joined by ".".
func (v Version) String() string {
	return strings.Join(v.components, ".")
}

// Bump increments the component at the category's index and resets all later
// components to 0. Earlier components are left untouched.
func (v Version) Bump(ctx context.Context, category Category) (Version, error) {
	index := category.Index()
	if index < 0 || index >= len(v.components) {
		return Version{}, errors.Errorf(
			ctx,
			"cannot bump %s of version %s: only %d components",
			category,
			v.String(),
			len(v.components),
		)
	}

	value, ok := new(big.Int).SetString(v.components[index], 10)
	if !ok {
		return Version{}, errors.Errorf(ctx, "invalid version component: %s", v.components[index])
	}
	value.Add(value, big.NewInt(1))

	result := make([]string, len(v.components))
	copy(result, v.components)
	result[index] = value.String()
	for i := index + 1; i < len(result); i++ {
		result[i] = "0"
	}
	return Version{components: result}, nil
}

// BumpString parses value and bumps it by category.
func BumpString(ctx context.Context, value string, category Category) (string, error) {
	version, err := ParseVersion(ctx, value)
	if err != nil {
		return "", errors.Wrap(ctx, err, "parse version")
	}
	bumped, err := version.Bump(ctx, category)
	if err != nil {
		return "", errors.Wrap(ctx, err, "bump version")
	}
	return bumped.String(), nil
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
