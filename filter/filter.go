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
// Package filter implements the encoding side of PDF stream filters.
//
// Filters are listed in the order in which a reader applies the
// corresponding decode filters, i.e. in the order of the /Filter entry of
// the stream dictionary.
package filter

import (
	"bytes"
	"compress/zlib"
	"errors"
	"io"

	pdf "seehuhn.de/go/pdfgraph"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Name returns the name of the filter, as used in the /Filter entry of a
	// stream dictionary.
	Name() pdf.Name

	// Encode returns a writer which encodes data and writes the result to w.
	// Closing the returned writer also closes w.
	Encode(w io.WriteCloser) (io.WriteCloser, error)
}

// Append encodes data using the given filters and stores the result as the
// stream data of obj.  The /Filter entry of the stream dictionary is set
// accordingly.  The stream of obj must be empty.
func Append(obj *pdf.IndirectObject, data []byte, filters ...Filter) error {
	if len(obj.Stream()) > 0 {
		return errNotEmpty
	}
	if obj.Payload == nil {
		obj.Payload = pdf.Dict{}
	}
	dict, ok := obj.Payload.(pdf.Dict)
	if !ok {
		return errNoDict
	}

	encoded, filterObj, err := Encode(data, filters...)
	if err != nil {
		return err
	}
	if filterObj == nil {
		delete(dict, "Filter")
	} else {
		dict["Filter"] = filterObj
	}
	return obj.AppendBytes(encoded)
}

// Encode applies the given filters to data.  The second return value is the
// value for the /Filter entry of the stream dictionary, or nil if no filters
// are given.
func Encode(data []byte, filters ...Filter) ([]byte, pdf.Object, error) {
	buf := &bytes.Buffer{}
	var w io.WriteCloser = nopCloser{buf}
	names := make(pdf.Array, len(filters))
	for i, f := range filters {
		var err error
		w, err = f.Encode(w)
		if err != nil {
			return nil, nil, err
		}
		names[i] = f.Name()
	}
	_, err := w.Write(data)
	if err != nil {
		return nil, nil, err
	}
	err = w.Close()
	if err != nil {
		return nil, nil, err
	}

	switch len(names) {
	case 0:
		return buf.Bytes(), nil, nil
	case 1:
		return buf.Bytes(), names[0], nil
	default:
		return buf.Bytes(), names, nil
	}
}

// Flate compresses data using the zlib/deflate format.
type Flate struct {
	// Level is the compression level, see [compress/zlib].  The zero value
	// selects the default compression level.
	Level int
}

// Name implements the [Filter] interface.
func (f Flate) Name() pdf.Name {
	return "FlateDecode"
}

// Encode implements the [Filter] interface.
func (f Flate) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return nil, err
	}
	return &flateWriter{Writer: zw, w: w}, nil
}

type flateWriter struct {
	*zlib.Writer
	w io.WriteCloser
}

func (fw *flateWriter) Close() error {
	err := fw.Writer.Close()
	if err != nil {
		return err
	}
	return fw.w.Close()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

// ByName returns the filter with the given name.  Only /FlateDecode and
// /ASCII85Decode are supported.
func ByName(name pdf.Name) (Filter, error) {
	switch name {
	case "FlateDecode":
		return Flate{}, nil
	case "ASCII85Decode":
		return ASCII85{}, nil
	}
	return nil, &UnsupportedFilterError{Name: name}
}

// UnsupportedFilterError is returned by [ByName] for unknown filter names.
type UnsupportedFilterError struct {
	Name pdf.Name
}

func (err *UnsupportedFilterError) Error() string {
	return "unsupported filter /" + string(err.Name)
}

var (
	errNotEmpty = errors.New("stream already contains data")
	errNoDict   = errors.New("stream payload is not a dictionary")
)
