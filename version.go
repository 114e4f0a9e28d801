// seehuhn.de/go/pdfgraph - a library for writing PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Version identifies a PDF version.  The value is ten times the major
// version number plus the minor version number, so that versions can be
// compared using the usual integer operators.  The zero value is not a
// valid version.
type Version uint8

// PDF versions which can be written by this library.
const (
	V1_0 Version = 10 + iota
	V1_1
	V1_2
	V1_3
	V1_4
	V1_5
	V1_6
	V1_7

	V2_0 Version = 20
)

// IsValid reports whether ver is one of the published PDF versions.
func (ver Version) IsValid() bool {
	return ver >= V1_0 && ver <= V1_7 || ver == V2_0
}

// ParseVersion parses a version string of the form "1.7".
// Only the canonical spelling of a published version is accepted.
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok || len(major) != 1 || len(minor) != 1 {
		return 0, errVersion
	}
	a, err1 := strconv.Atoi(major)
	b, err2 := strconv.Atoi(minor)
	if err1 != nil || err2 != nil {
		return 0, errVersion
	}
	ver := Version(10*a + b)
	if !ver.IsValid() {
		return 0, errVersion
	}
	return ver, nil
}

// ToString returns the version number as it appears in the file header,
// e.g. "1.7".
func (ver Version) ToString() (string, error) {
	if !ver.IsValid() {
		return "", errVersion
	}
	return fmt.Sprintf("%d.%d", uint8(ver)/10, uint8(ver)%10), nil
}

func (ver Version) String() string {
	if s, err := ver.ToString(); err == nil {
		return s
	}
	return fmt.Sprintf("invalid PDF version %d", uint8(ver))
}

// Require checks that ver is at least minVer.  If this is not the case,
// a *VersionError naming the feature is returned.
func (ver Version) Require(feature string, minVer Version) error {
	if ver >= minVer {
		return nil
	}
	return &VersionError{Feature: feature, Have: ver, Need: minVer}
}

// VersionError is returned when a feature is used in a document whose PDF
// version is too old to support it.
type VersionError struct {
	Feature string
	Have    Version
	Need    Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("%s requires PDF %s or newer, document is PDF %s",
		err.Feature, err.Need, err.Have)
}
