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
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Object represents a value in a PDF file.  The set of object types is
// closed: Array, Bool, Dict, Integer, Name, Real, Reference, String and
// *IndirectObject implement this interface, and the Go value nil represents
// the PDF null object.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error

	isObject()
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Bool) isObject() {}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Integer) isObject() {}

// Real represents an real number in a PDF file.
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Real) isObject() {}

// String represents a raw string in a PDF file.  The character set encoding,
// if any, is determined by the context.
type String []byte

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x String) isObject() {}

// TextString creates a String object using the "text string" encoding.
// Strings which only use characters shared between PDFDocEncoding and
// Latin-1 are stored as single bytes, everything else is stored as
// UTF-16BE with a byte order mark.
func TextString(s string) String {
	single := true
	for _, r := range s {
		if !isDocEncodingRune(r) {
			single = false
			break
		}
	}
	if single {
		buf, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
		if err == nil {
			return String(buf)
		}
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// invalid UTF-8 input; keep the bytes unchanged
		return String(s)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns the
// corresponding UTF-8 encoded string.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		buf, err := dec.Bytes(x)
		if err == nil {
			return string(buf)
		}
	}
	buf, _ := charmap.ISO8859_1.NewDecoder().Bytes(x)
	return string(buf)
}

// isDocEncodingRune reports whether r is encoded by the same byte in
// PDFDocEncoding and in Latin-1.
func isDocEncodingRune(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r >= 0xA1 && r <= 0xFF && r != 0xAD:
		return true
	}
	return false
}

// Date creates a PDF String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:] + "'"
	return String(s)
}

// Name represents a name in a PDF file.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Name) isObject() {}

// Array represent an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the Object interface.
func (x Array) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Array) isObject() {}

// Dict represent a Dictionary object in a PDF file.
type Dict map[Name]Object

func (x Dict) String() string {
	res := []string{}
	tp, ok := x["Type"].(Name)
	if ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(len(x))+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// PDF implements the Object interface.
func (x Dict) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Dict) isObject() {}

// Reference represents a reference to an indirect object in a PDF file.
// References do not own the object they point to.
type Reference struct {
	Number     uint32
	Generation uint16
}

func (x Reference) String() string {
	res := "obj_" + strconv.FormatUint(uint64(x.Number), 10)
	if x.Generation > 0 {
		res += "@" + strconv.FormatUint(uint64(x.Generation), 10)
	}
	return res
}

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	return writeObject(w, x)
}

func (x Reference) isObject() {}
