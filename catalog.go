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

import "golang.org/x/text/language"

// Catalog represents a PDF Document Catalog.  The only required field in this
// structure is Pages, which specifies the root of the page tree.
//
// The Document Catalog is documented in section 7.7.2 of PDF 32000-1:2008.
type Catalog struct {
	// Pages is the root of the document's page tree.
	Pages Object

	// PageLayout (optional) specifies the page layout which shall be used
	// when the document is opened, e.g. /SinglePage or /OneColumn.
	PageLayout Name

	// PageMode (optional) specifies how the document shall be displayed
	// when opened, e.g. /UseNone or /UseOutlines.
	PageMode Name

	// Metadata (optional, PDF 1.4) is a metadata stream containing metadata
	// for the document.
	Metadata Object

	// Lang (optional, PDF 1.4) specifies the natural language for all text
	// in the document.
	Lang language.Tag
}

// AsDict converts the catalog into a PDF dictionary.
func (cat *Catalog) AsDict() Dict {
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": cat.Pages,
	}
	if cat.PageLayout != "" {
		dict["PageLayout"] = cat.PageLayout
	}
	if cat.PageMode != "" {
		dict["PageMode"] = cat.PageMode
	}
	if cat.Metadata != nil {
		dict["Metadata"] = cat.Metadata
	}
	if cat.Lang != language.Und {
		dict["Lang"] = TextString(cat.Lang.String())
	}
	return dict
}
