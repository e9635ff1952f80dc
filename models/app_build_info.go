// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildUnknown = "N/A"

// BuildInfo is version metadata injected with -ldflags at release time.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	orDefault := func(s string) string {
		if s == "" {
			return buildUnknown
		}
		return s
	}

	return BuildInfo{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// String renders the three lines printed on startup.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}
