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
	"slices"

	"golang.org/x/exp/maps"
)

// Perm is the 32-bit permission mask of an encrypted PDF file, as stored in
// the /P entry of the encryption dictionary.  A set bit grants the
// corresponding permission to users who open the document with the user
// password.
//
// PDF 32000-1:2008 numbers the bits starting with 1 for the least
// significant bit.  Bits not listed below are reserved and are kept set.
type Perm uint32

const (
	// PermPrint allows to print the document (bit 3).
	PermPrint Perm = 1 << (3 - 1)

	// PermModify allows to modify the contents of the document (bit 4).
	PermModify Perm = 1 << (4 - 1)

	// PermCopy allows to copy or extract text and graphics (bit 5).
	PermCopy Perm = 1 << (5 - 1)

	// PermAnnotate allows to add or modify annotations (bit 6).
	PermAnnotate Perm = 1 << (6 - 1)

	// PermAll has all bits set.  This is the default.
	PermAll Perm = 0xFFFF_FFFF
)

var permByName = map[string]Perm{
	"print_document":     PermPrint,
	"modify_contents":    PermModify,
	"copy_contents":      PermCopy,
	"modify_annotations": PermAnnotate,
}

// PermissionNames returns the names accepted by [Perm.Set], in sorted
// order.
func PermissionNames() []string {
	names := maps.Keys(permByName)
	slices.Sort(names)
	return names
}

// Set returns a copy of perm where the named permission is granted or
// revoked.  All other bits are left unchanged.  If name is not one of
// the names listed by [PermissionNames], an *InvalidPermissionError is
// returned.
func (perm Perm) Set(name string, allowed bool) (Perm, error) {
	bit, ok := permByName[name]
	if !ok {
		return perm, &InvalidPermissionError{Name: name}
	}
	if allowed {
		return perm | bit, nil
	}
	return perm &^ bit, nil
}

// ParsePerm converts a map from permission names to booleans into a
// permission mask.  Permissions which are not mentioned are granted.
func ParsePerm(m map[string]bool) (Perm, error) {
	perm := PermAll
	names := maps.Keys(m)
	slices.Sort(names)
	for _, name := range names {
		var err error
		perm, err = perm.Set(name, m[name])
		if err != nil {
			return 0, err
		}
	}
	return perm, nil
}
