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

// Package pdf builds PDF files from a graph of indirect objects.
//
// A Document holds a store of numbered indirect objects.  Objects are
// allocated first and can then be modified freely, including adding
// references to objects which are allocated later.  Once the graph is
// complete, the document is rendered in a single pass:
//
//	doc := pdf.NewDocument(nil)
//	pages := doc.Alloc(nil)
//	doc.SetCatalog(&pdf.Catalog{Pages: pages})
//	pages.Payload = pdf.Dict{
//		"Type":  pdf.Name("Pages"),
//		"Kids":  pdf.Array{},
//		"Count": pdf.Integer(0),
//	}
//	err := doc.WriteFile("out.pdf")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The following types implement the native PDF object types.
// All of these implement the `pdf.Object` interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	String
//	*IndirectObject (written as a reference)
//
// The Go value nil represents the PDF null object.  Stream data is attached
// to indirect objects using [IndirectObject.AppendBytes].
//
// Documents can be protected using the 40-bit RC4 variant of the PDF
// standard security handler, see [Document.EnableEncryption].
package pdf
