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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEncryptionEnabled is returned by [Document.EnableEncryption] if
	// encryption has already been set up for the document.
	ErrEncryptionEnabled = errors.New("encryption already enabled")

	errNoRoot          = errors.New("missing /Root")
	errVersion         = errors.New("unsupported PDF version")
	errInvalidPassword = errors.New("invalid password")
	errTempFile        = errors.New("cannot create temporary file")
)

// ConversionError indicates that a value cannot be represented in a PDF file.
type ConversionError struct {
	// Kind describes the offending value, e.g. "Name" or "chan int".
	Kind string

	// Err gives the reason, if known.
	Err error
}

func (err *ConversionError) Error() string {
	msg := "cannot convert " + err.Kind + " to PDF"
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConversionError) Unwrap() error {
	return err.Err
}

// MissingPayloadError is returned when an indirect object is written before
// a payload has been assigned to it.
type MissingPayloadError struct {
	Ref Reference
}

func (err *MissingPayloadError) Error() string {
	return fmt.Sprintf("object %d %d has no payload", err.Ref.Number, err.Ref.Generation)
}

// InvalidPermissionError is returned when an unknown permission name is used.
type InvalidPermissionError struct {
	Name string
}

func (err *InvalidPermissionError) Error() string {
	return fmt.Sprintf("invalid permission %q (valid permissions: %s)",
		err.Name, strings.Join(PermissionNames(), ", "))
}

func wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", loc, err)
}
