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
	"iter"
)

// IndirectObject is an object in the body of a PDF file, which can be
// referenced from other objects by its object number and generation.
//
// Indirect objects are created using [Store.Alloc].  Until the document is
// rendered, the payload and the stream data can be modified freely.
type IndirectObject struct {
	// Payload is the value of the object.  If stream data is attached to
	// the object, Payload must be a Dict.
	Payload Object

	// Generation is the generation number of the object.
	// Since the generation number is part of the encryption key for
	// the object, it must not be changed while a document is being
	// rendered.
	Generation uint16

	number uint32
	stream []byte
	offset int64
}

// Number returns the object number.
func (o *IndirectObject) Number() uint32 {
	return o.number
}

// Ref returns a reference to the object, using the current generation
// number.
func (o *IndirectObject) Ref() Reference {
	return Reference{Number: o.number, Generation: o.Generation}
}

// Offset returns the byte offset of the object in the most recently
// rendered output.  The second return value is false, if the object has
// not been rendered yet.
func (o *IndirectObject) Offset() (int64, bool) {
	return o.offset, o.offset >= 0
}

// Stream returns the stream data attached to the object, or nil if the
// object is not a stream.
func (o *IndirectObject) Stream() []byte {
	return o.stream
}

// AppendBytes appends data to the stream of the object.  If the object
// does not yet have a stream, one is created.  The /Length entry of the
// stream dictionary is updated to match the new length.
//
// If the payload is nil, it is replaced by an empty Dict.  Payloads of any
// other type than Dict result in a *ConversionError.
func (o *IndirectObject) AppendBytes(data []byte) error {
	dict, err := o.streamDict()
	if err != nil {
		return err
	}
	if o.stream == nil {
		o.stream = []byte{}
	}
	o.stream = append(o.stream, data...)
	dict["Length"] = Integer(len(o.stream))
	return nil
}

// Write implements the io.Writer interface, by appending p to the
// stream data.
func (o *IndirectObject) Write(p []byte) (int, error) {
	err := o.AppendBytes(p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (o *IndirectObject) streamDict() (Dict, error) {
	switch x := o.Payload.(type) {
	case nil:
		dict := Dict{}
		o.Payload = dict
		return dict, nil
	case Dict:
		if x == nil {
			x = Dict{}
			o.Payload = x
		}
		return x, nil
	default:
		return nil, &ConversionError{
			Kind: fmt.Sprintf("%T", o.Payload),
			Err:  errStreamDict,
		}
	}
}

var errStreamDict = errors.New("stream payload must be a Dict")

// PDF implements the Object interface.  Indirect objects are always
// written as references.
func (o *IndirectObject) PDF(w io.Writer) error {
	return writeObject(w, o)
}

func (o *IndirectObject) isObject() {}

// encode writes the complete indirect object, from "obj" to "endobj",
// using the given encoder.
func (o *IndirectObject) encode(e *encoder) error {
	if o.Payload == nil {
		return &MissingPayloadError{Ref: o.Ref()}
	}

	if o.stream != nil {
		dict, err := o.streamDict()
		if err != nil {
			return err
		}
		dict["Length"] = Integer(len(o.stream))
	}

	fmt.Fprintf(e.buf, "%d %d obj\n", o.number, o.Generation)
	err := e.encode(o.Payload)
	if err != nil {
		return wrap(err, o.Ref().String())
	}
	e.buf.WriteByte('\n')
	if o.stream != nil {
		err = e.stream(o.stream)
		if err != nil {
			return err
		}
	}
	e.buf.WriteString("endobj\n")
	return nil
}

// Bytes returns the serialized form of the indirect object, without
// encryption.
func (o *IndirectObject) Bytes() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := o.encode(&encoder{buf: buf})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Store holds the indirect objects of a PDF file.  Objects are numbered
// consecutively, starting at 1, in the order in which they are allocated.
// This is also the order in which the objects appear in the output.
type Store struct {
	objects   []*IndirectObject
	rendering bool
}

// Alloc creates a new indirect object with the given payload and adds it to
// the store.  The payload can be nil and assigned later.
//
// Alloc must not be called while the store is being rendered.
func (s *Store) Alloc(payload Object) *IndirectObject {
	if s.rendering {
		panic("pdf: Alloc called while rendering")
	}
	obj := &IndirectObject{
		Payload: payload,
		number:  uint32(len(s.objects) + 1),
		offset:  -1,
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Get returns the object with the given object number, or nil if no such
// object exists.
func (s *Store) Get(number uint32) *IndirectObject {
	if number < 1 || int(number) > len(s.objects) {
		return nil
	}
	return s.objects[number-1]
}

// Len returns the number of objects in the store.
// The free object 0 is not included in this count.
func (s *Store) Len() int {
	return len(s.objects)
}

// All iterates over the objects in the store, in allocation order.
func (s *Store) All() iter.Seq[*IndirectObject] {
	return func(yield func(*IndirectObject) bool) {
		for _, obj := range s.objects {
			if !yield(obj) {
				return
			}
		}
	}
}
