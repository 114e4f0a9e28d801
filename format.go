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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// cryptFunc transforms the contents of strings and streams before they
// are written.  The function may modify its argument.
type cryptFunc func([]byte) ([]byte, error)

// encoder converts objects to PDF syntax.  With crypt == nil, the output is
// the plain PDF representation; otherwise every string and every stream body
// is passed through crypt first.  All other object types are written
// identically in both cases.
type encoder struct {
	buf   *bytes.Buffer
	crypt cryptFunc
}

// Format returns the PDF representation of obj.
func Format(obj Object) (string, error) {
	buf := &bytes.Buffer{}
	e := &encoder{buf: buf}
	err := e.encode(obj)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeObject(w io.Writer, obj Object) error {
	buf := &bytes.Buffer{}
	e := &encoder{buf: buf}
	err := e.encode(obj)
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func (e *encoder) encode(obj Object) error {
	switch x := obj.(type) {
	case nil:
		e.buf.WriteString("null")

	case Bool:
		if x {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}

	case Integer:
		e.buf.WriteString(strconv.FormatInt(int64(x), 10))

	case Real:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &ConversionError{
				Kind: "Real",
				Err:  fmt.Errorf("non-finite value %g", f),
			}
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s = s + "."
		}
		e.buf.WriteString(s)

	case String:
		data := []byte(x)
		if e.crypt != nil {
			var err error
			data, err = e.crypt(slices.Clone(data))
			if err != nil {
				return err
			}
		}
		writeLiteral(e.buf, data)

	case Name:
		return writeName(e.buf, x)

	case Array:
		e.buf.WriteByte('[')
		for i, val := range x {
			if i > 0 {
				e.buf.WriteByte(' ')
			}
			err := e.encode(val)
			if err != nil {
				return err
			}
		}
		e.buf.WriteByte(']')

	case Dict:
		if x == nil {
			e.buf.WriteString("null")
			return nil
		}
		keys := maps.Keys(x)
		slices.Sort(keys)
		e.buf.WriteString("<<")
		for _, key := range keys {
			val := x[key]
			if val == nil {
				continue
			}
			e.buf.WriteByte(' ')
			err := writeName(e.buf, key)
			if err != nil {
				return err
			}
			e.buf.WriteByte(' ')
			err = e.encode(val)
			if err != nil {
				return err
			}
			e.buf.WriteByte('\n')
		}
		e.buf.WriteString(">>")

	case Reference:
		fmt.Fprintf(e.buf, "%d %d R", x.Number, x.Generation)

	case *IndirectObject:
		if x == nil {
			e.buf.WriteString("null")
			return nil
		}
		fmt.Fprintf(e.buf, "%d %d R", x.number, x.Generation)

	default:
		return &ConversionError{Kind: fmt.Sprintf("%T", obj)}
	}
	return nil
}

// stream writes the body of a stream object, including the surrounding
// keywords.
func (e *encoder) stream(data []byte) error {
	if e.crypt != nil {
		var err error
		data, err = e.crypt(slices.Clone(data))
		if err != nil {
			return err
		}
	}
	e.buf.WriteString("stream\n")
	e.buf.Write(data)
	e.buf.WriteString("\nendstream\n")
	return nil
}

// writeLiteral writes data as a literal string.  Parentheses and
// backslashes are escaped, so that the string is balanced independent of its
// contents.  Carriage returns are escaped to protect them from end-of-line
// normalisation by readers.
func writeLiteral(buf *bytes.Buffer, data []byte) {
	buf.WriteByte('(')
	for _, c := range data {
		switch c {
		case '(', ')', '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
}

var errNameSpace = errors.New("white space in name")

func writeName(buf *bytes.Buffer, x Name) error {
	l := []byte(x)
	for _, c := range l {
		if isSpace[c] {
			return &ConversionError{
				Kind: "Name " + strconv.Quote(string(x)),
				Err:  errNameSpace,
			}
		}
	}

	buf.WriteByte('/')
	for _, c := range l {
		if isDelimiter[c] || c < 0x21 || c > 0x7e || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return nil
}

var isSpace = map[byte]bool{
	0:  true,
	9:  true,
	10: true,
	12: true,
	13: true,
	32: true,
}

var isDelimiter = map[byte]bool{
	'(': true,
	')': true,
	'<': true,
	'>': true,
	'[': true,
	']': true,
	'{': true,
	'}': true,
	'/': true,
	'%': true,
}
