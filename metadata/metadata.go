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
// Package metadata creates XMP metadata streams for PDF documents.
package metadata

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	pdf "seehuhn.de/go/pdfgraph"
)

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}

// FromInfo converts a document information dictionary into an XMP packet.
// The version is recorded in the pdf:PDFVersion property.
func FromInfo(info *pdf.Info, ver pdf.Version) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.Und, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(language.Und, info.Subject)
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &PDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}
	if verString, err := ver.ToString(); err == nil {
		pdfInfo.PDFVersion = xmp.NewText(verString)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Embed writes the XMP packet into a new metadata stream in doc.
// The returned object can be used as the /Metadata entry of the document
// catalog.
func Embed(doc *pdf.Document, packet *xmp.Packet) (*pdf.IndirectObject, error) {
	err := doc.Version.Require("XMP metadata stream", pdf.V1_4)
	if err != nil {
		return nil, err
	}

	obj := doc.Alloc(pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	})
	opt := &xmp.PacketOptions{
		Pretty: true,
	}
	err = packet.Write(obj, opt)
	if err != nil {
		return nil, err
	}
	return obj, nil
}
