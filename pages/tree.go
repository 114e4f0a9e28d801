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
// Package pages implements PDF page trees.
//
// Pages are added to a [Tree] in order.  When the tree is closed, the
// pages are arranged into a balanced tree of /Pages nodes, where every
// node has at most 16 children.
package pages

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	"seehuhn.de/go/geom/rect"

	pdf "seehuhn.de/go/pdfgraph"
	"seehuhn.de/go/pdfgraph/filter"
)

// Tree represents a PDF page tree.
type Tree struct {
	doc  *pdf.Document
	root *pdf.IndirectObject

	mediaBox pdf.Array

	// pages contains the page objects, in page order.
	pages []*pdf.IndirectObject

	// streams maps hashes of encoded content streams to the corresponding
	// stream objects.
	streams map[uint64][]contentInfo

	isClosed bool
}

// NewTree allocates the root node of a new page tree in doc.
// The media box is inherited by all pages which do not specify their own;
// if mediaBox is nil, A4 paper is used.
//
// The root node can be referenced (e.g. from the document catalog) straight
// away, but the tree only lists the pages after Close has been called.
func NewTree(doc *pdf.Document, mediaBox *rect.Rect) (*Tree, error) {
	if mediaBox == nil {
		mediaBox = A4
	}
	box, err := Rectangle(mediaBox)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		doc:      doc,
		mediaBox: box,
	}
	t.root = doc.Alloc(t.node(pdf.Array{}, 0))
	return t, nil
}

// Root returns the root node of the page tree.
func (t *Tree) Root() *pdf.IndirectObject {
	return t.root
}

// NumPages returns the number of pages added so far.
func (t *Tree) NumPages() int {
	return len(t.pages)
}

// AddPage appends a new page to the tree and returns the page object.
// If attr.Contents is not nil, a content stream object is allocated for
// the page.
func (t *Tree) AddPage(attr *Attributes) (*pdf.IndirectObject, error) {
	if t.isClosed {
		return nil, errClosed
	}
	if attr == nil {
		attr = &Attributes{}
	}
	if attr.Rotate%90 != 0 {
		return nil, errRotate
	}

	dict := pdf.Dict{
		"Type": pdf.Name("Page"),
	}
	if attr.MediaBox != nil {
		box, err := Rectangle(attr.MediaBox)
		if err != nil {
			return nil, err
		}
		dict["MediaBox"] = box
	}
	if attr.CropBox != nil {
		box, err := Rectangle(attr.CropBox)
		if err != nil {
			return nil, err
		}
		dict["CropBox"] = box
	}
	if attr.Resources != nil {
		dict["Resources"] = attr.Resources
	}
	if rot := attr.Rotate % 360; rot != 0 {
		if rot < 0 {
			rot += 360
		}
		dict["Rotate"] = pdf.Integer(rot)
	}

	// A filter error must not leave any new objects in the document.
	if attr.Contents != nil {
		contents, err := t.contentStream(attr.Contents, attr.Filters)
		if err != nil {
			return nil, err
		}
		dict["Contents"] = contents
	}
	page := t.doc.Alloc(dict)

	t.pages = append(t.pages, page)
	return page, nil
}

// contentStream returns a stream object holding the encoded data.
// Pages with identical content share the same stream object.
func (t *Tree) contentStream(data []byte, filters []filter.Filter) (*pdf.IndirectObject, error) {
	encoded, filterObj, err := filter.Encode(data, filters...)
	if err != nil {
		return nil, err
	}
	filterDesc, err := pdf.Format(filterObj)
	if err != nil {
		return nil, err
	}

	key := xxhash.Sum64(encoded)
	for _, c := range t.streams[key] {
		if c.filter == filterDesc && bytes.Equal(c.obj.Stream(), encoded) {
			return c.obj, nil
		}
	}

	dict := pdf.Dict{}
	if filterObj != nil {
		dict["Filter"] = filterObj
	}
	obj := t.doc.Alloc(dict)
	err = obj.AppendBytes(encoded)
	if err != nil {
		return nil, err
	}

	if t.streams == nil {
		t.streams = make(map[uint64][]contentInfo)
	}
	t.streams[key] = append(t.streams[key], contentInfo{obj: obj, filter: filterDesc})
	return obj, nil
}

type contentInfo struct {
	obj    *pdf.IndirectObject
	filter string
}

// Close arranges the pages into a balanced tree and sets the /Parent
// entries of all pages.  No more pages can be added after the tree has been
// closed.
func (t *Tree) Close() error {
	if t.isClosed {
		return errClosed
	}
	t.isClosed = true

	level := make([]*nodeInfo, len(t.pages))
	for i, page := range t.pages {
		level[i] = &nodeInfo{obj: page, pageCount: 1}
	}
	for len(level) > maxDegree {
		var next []*nodeInfo
		for start := 0; start < len(level); start += maxDegree {
			end := min(start+maxDegree, len(level))
			next = append(next, t.link(t.doc.Alloc(nil), level[start:end]))
		}
		level = next
	}
	t.link(t.root, level)
	return nil
}

// link makes kids the children of the /Pages node parent.
func (t *Tree) link(parent *pdf.IndirectObject, kids []*nodeInfo) *nodeInfo {
	kidsArray := make(pdf.Array, len(kids))
	pageCount := 0
	for i, kid := range kids {
		if dict, ok := kid.obj.Payload.(pdf.Dict); ok {
			dict["Parent"] = parent
		}
		kidsArray[i] = kid.obj
		pageCount += kid.pageCount
	}

	if parent == t.root {
		parent.Payload = t.node(kidsArray, pageCount)
	} else {
		parent.Payload = pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Kids":  kidsArray,
			"Count": pdf.Integer(pageCount),
		}
	}
	return &nodeInfo{obj: parent, pageCount: pageCount}
}

// node returns the dictionary for the root node.
// The root node carries the inherited attributes.
func (t *Tree) node(kids pdf.Array, pageCount int) pdf.Dict {
	return pdf.Dict{
		"Type":      pdf.Name("Pages"),
		"Kids":      kids,
		"Count":     pdf.Integer(pageCount),
		"MediaBox":  t.mediaBox,
		"Resources": pdf.Dict{},
	}
}

type nodeInfo struct {
	obj       *pdf.IndirectObject
	pageCount int
}

const maxDegree = 16
