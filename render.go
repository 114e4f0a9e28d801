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
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
)

// Render generates the complete PDF file.
//
// The byte offsets of all objects are recomputed on every call.  Calling
// Render twice without modifying the document in between gives identical
// output.  If rendering fails, all objects are left without an offset.
func (doc *Document) Render() (_ []byte, err error) {
	if doc.Root == nil {
		return nil, errNoRoot
	}
	ver, err := doc.Version.ToString()
	if err != nil {
		return nil, err
	}

	for obj := range doc.All() {
		obj.offset = -1
	}

	doc.rendering = true
	defer func() {
		doc.rendering = false
		if err != nil {
			for obj := range doc.All() {
				obj.offset = -1
			}
		}
	}()

	r := &renderer{
		doc: doc,
		buf: &bytes.Buffer{},
	}
	r.writeHeader(ver)
	err = r.writeBody()
	if err != nil {
		return nil, err
	}
	r.writeXRef()
	err = r.writeTrailer()
	if err != nil {
		return nil, err
	}
	return r.buf.Bytes(), nil
}

// WriteTo renders the document and writes the result to w.
// This implements the io.WriterTo interface.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	data, err := doc.Render()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// WriteFile renders the document and stores the result in the named file.
// The file is only replaced once the complete output has been generated, so
// that errors never leave a truncated file behind.
//
// Like [os.WriteFile], the new file is created with mode 0666 before the
// umask is applied.  The mode of a file which is replaced is not kept.
func (doc *Document) WriteFile(name string) error {
	data, err := doc.Render()
	if err != nil {
		return err
	}

	fd, err := createTemp(filepath.Dir(name))
	if err != nil {
		return err
	}
	tmpName := fd.Name()
	_, err = fd.Write(data)
	if err1 := fd.Close(); err == nil {
		err = err1
	}
	if err == nil {
		err = os.Rename(tmpName, name)
	}
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// createTemp creates a new, hidden file in dir.  Unlike [os.CreateTemp],
// the permissions are subject to the umask.
func createTemp(dir string) (*os.File, error) {
	for range 1000 {
		name := filepath.Join(dir, ".pdf-"+strconv.FormatUint(rand.Uint64(), 36))
		fd, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return fd, err
	}
	return nil, errTempFile
}

// renderer writes the four sections of a PDF file (header, body, cross
// reference table and trailer), in this order.
type renderer struct {
	doc *Document
	buf *bytes.Buffer

	xrefPos int64
}

func (r *renderer) pos() int64 {
	return int64(r.buf.Len())
}

func (r *renderer) writeHeader(ver string) {
	fmt.Fprintf(r.buf, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
}

func (r *renderer) writeBody() error {
	sec := r.doc.sec
	for obj := range r.doc.All() {
		// The offset must be recorded before the object is written.
		obj.offset = r.pos()

		e := &encoder{buf: r.buf}
		if sec != nil {
			e.crypt = sec.cryptFor(obj.Ref())
		}
		err := obj.encode(e)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeXRef writes the cross-reference table.  Every entry is exactly 20
// bytes long, including the two-byte end-of-line marker " \n".
func (r *renderer) writeXRef() {
	r.xrefPos = r.pos()

	fmt.Fprintf(r.buf, "xref\n0 %d\n", r.doc.Len()+1)
	r.buf.WriteString("0000000000 65535 f \n")
	for obj := range r.doc.All() {
		fmt.Fprintf(r.buf, "%010d %05d n \n", obj.offset, obj.Generation)
	}
}

func (r *renderer) writeTrailer() error {
	doc := r.doc
	trailer := Dict{
		"Size": Integer(doc.Len() + 1),
		"Root": doc.Root,
	}
	if doc.Info != nil {
		trailer["Info"] = doc.Info
	}
	if doc.encrypt != nil {
		trailer["Encrypt"] = doc.encrypt
	}

	r.buf.WriteString("trailer\n")
	err := (&encoder{buf: r.buf}).encode(trailer)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.buf, "\nstartxref\n%d\n%%%%EOF", r.xrefPos)
	return nil
}
