// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// UnknownBuildValue stands in for build metadata the linker did not set.
const UnknownBuildValue = "N/A"

// AppBuildInfo is the version stamp injected into a binary with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the given values and replaces empty ones with
// [UnknownBuildValue].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the stamp the way both binaries print it on startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return UnknownBuildValue
	}
	return v
}
