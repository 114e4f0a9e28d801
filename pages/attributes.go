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
package pages

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"

	pdf "seehuhn.de/go/pdfgraph"
	"seehuhn.de/go/pdfgraph/filter"
)

// Attributes describes a single page.
//
// MediaBox, CropBox, Resources and Rotate are inheritable.  Fields which
// are left at their zero value are taken from the root of the page tree.
// These attributes are documented in section 7.7.3.3 of PDF 32000-1:2008.
type Attributes struct {
	// MediaBox defines the boundaries of the physical medium on which the
	// page shall be displayed or printed.
	MediaBox *rect.Rect

	// CropBox defines the visible region of default user space.
	CropBox *rect.Rect

	// Resources maps resource categories (e.g. /Font) to the resources used
	// by the content stream.
	Resources pdf.Dict

	// Rotate gives the number of degrees by which the page shall be rotated
	// clockwise when displayed or printed.  The value shall be a multiple of
	// 90.
	Rotate int

	// Contents is the content stream of the page.  If this is nil, the page
	// has no /Contents entry.
	Contents []byte

	// Filters are applied to the content stream.
	Filters []filter.Filter
}

// Default paper sizes.
var (
	A4     = &rect.Rect{URx: 595.276, URy: 841.890}
	A5     = &rect.Rect{URx: 420.945, URy: 595.276}
	Letter = &rect.Rect{URx: 612, URy: 792}
	Legal  = &rect.Rect{URx: 612, URy: 1008}
)

// PaperSize returns the paper size with the given name, e.g. "A4" or
// "letter".  The second return value is false if the name is unknown.
func PaperSize(name string) (*rect.Rect, bool) {
	switch name {
	case "A4", "a4":
		return A4, true
	case "A5", "a5":
		return A5, true
	case "Letter", "letter":
		return Letter, true
	case "Legal", "legal":
		return Legal, true
	}
	return nil, false
}

// Rectangle converts r into a PDF rectangle.  Coordinates are rounded to two
// decimal places.
func Rectangle(r *rect.Rect) (pdf.Array, error) {
	if r.URx <= r.LLx || r.URy <= r.LLy {
		return nil, errEmptyRect
	}
	res := make(pdf.Array, 0, 4)
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		x = math.Round(100*x) / 100
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			res = append(res, pdf.Integer(x))
		} else {
			res = append(res, pdf.Real(x))
		}
	}
	return res, nil
}

var (
	errEmptyRect = errors.New("empty rectangle")
	errRotate    = errors.New("page rotation must be a multiple of 90")
	errClosed    = errors.New("page tree is closed")
)
