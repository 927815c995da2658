// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"strings"
)

// Settings maps section name to key/value pairs of the settings file.
type Settings map[string]map[string]string

// Get returns the value of key in section.
func (s Settings) Get(section string, key string) (string, bool) {
	values, ok := s[section]
	if !ok {
		return "", false
	}
	value, ok := values[key]
	return value, ok
}

// GetOrDefault returns the value of key in section or defaultValue if unset.
func (s Settings) GetOrDefault(section string, key string, defaultValue string) string {
	if value, ok := s.Get(section, key); ok {
		return value
	}
	return defaultValue
}

// List returns a comma-separated setting as trimmed non-empty strings.
func (s Settings) List(section string, key string) []string {
	value, _ := s.Get(section, key)
	return SplitList(value)
}

// SectionNames returns all section names in sorted order.
func (s Settings) SectionNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SplitList splits value at "," and drops empty entries.
func SplitList(value string) []string {
	result := []string{}
	for _, entry := range strings.Split(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			result = append(result, entry)
		}
	}
	return result
}
