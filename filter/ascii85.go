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
package filter

import (
	"io"

	pdf "seehuhn.de/go/pdfgraph"
)

// ASCII85 encodes binary data as printable ASCII characters.
type ASCII85 struct{}

// Name implements the [Filter] interface.
func (ASCII85) Name() pdf.Name {
	return "ASCII85Decode"
}

// Encode implements the [Filter] interface.
func (ASCII85) Encode(w io.WriteCloser) (io.WriteCloser, error) {
	return &ascii85Writer{
		w:   w,
		buf: make([]byte, 0, 80),
	}, nil
}

// ascii85Writer groups the output into lines of at most 80 characters.
type ascii85Writer struct {
	w   io.WriteCloser
	buf []byte
	v   uint32
	k   int
}

func (w *ascii85Writer) Write(p []byte) (int, error) {
	for n, b := range p {
		w.v = w.v<<8 | uint32(b)
		w.k++
		if w.k < 4 {
			continue
		}

		if cap(w.buf) < len(w.buf)+8 { // space for "xxxxx~>\n"
			err := w.flush()
			if err != nil {
				return n, err
			}
		}
		if w.v == 0 {
			w.buf = append(w.buf, 'z')
		} else {
			w.buf = appendGroup(w.buf, w.v, 5)
		}
		w.v = 0
		w.k = 0
	}
	return len(p), nil
}

func (w *ascii85Writer) Close() error {
	if w.k != 0 {
		// A final partial group of k bytes is padded with zeros,
		// and only the first k+1 digits are written.
		v := w.v << ((4 - w.k) * 8)
		w.buf = appendGroup(w.buf, v, w.k+1)
		w.v = 0
		w.k = 0
	}
	w.buf = append(w.buf, '~', '>')
	err := w.flush()
	if err != nil {
		return err
	}
	return w.w.Close()
}

func (w *ascii85Writer) flush() error {
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	if err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

// appendGroup appends the first n base-85 digits of v.
func appendGroup(buf []byte, v uint32, n int) []byte {
	var c [5]byte
	for i := 4; i >= 0; i-- {
		c[i] = byte(v%85) + '!'
		v /= 85
	}
	return append(buf, c[:n]...)
}
