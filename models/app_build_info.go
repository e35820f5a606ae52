// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo holds the version, date and commit the phantomd binary was
// linked with.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String formats the build metadata as a banner line. Values the linker did
// not set are shown as N/A.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("phantomd %s (commit %s, built %s)", orUnknown(a.version), orUnknown(a.commit), orUnknown(a.date))
}
