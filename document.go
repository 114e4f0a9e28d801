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

// Options can be used to control the output of a Document.
type Options struct {
	// Version is the PDF version used in the file header.
	// If this is zero, PDF version 1.4 is used.
	Version Version
}

// Document is a PDF file under construction.  Objects are added to the
// document using the methods of the embedded Store.  Once the object
// graph is complete, the file can be generated using [Document.Render] or
// [Document.WriteFile].
//
// A Document must not be used concurrently from different goroutines.
type Document struct {
	Store

	// Version is the PDF version written to the file header.
	Version Version

	// Root is the document catalog.  This must be set before the
	// document can be rendered.
	Root *IndirectObject

	// Info is the optional document information dictionary.
	Info *IndirectObject

	sec     *securityHandler
	encrypt *IndirectObject
}

// NewDocument creates a new, empty document.
// If opt is nil, default options are used.
func NewDocument(opt *Options) *Document {
	if opt == nil {
		opt = &Options{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = V1_4
	}
	return &Document{
		Version: ver,
	}
}

// EnableEncryption sets up encryption for the document.  All strings and
// streams in the document will be encrypted using a key derived from the
// user password, and an encryption dictionary is added to the document.
//
// Encryption can only be enabled once per document; further calls return
// ErrEncryptionEnabled.
func (doc *Document) EnableEncryption(opt *EncryptOptions) error {
	if doc.sec != nil {
		return ErrEncryptionEnabled
	}
	if opt == nil {
		opt = &EncryptOptions{}
	}
	err := doc.Version.Require("encryption", V1_1)
	if err != nil {
		return err
	}

	perm, err := ParsePerm(opt.Permissions)
	if err != nil {
		return err
	}
	sec, err := newSecurityHandler(opt.UserPassword, opt.OwnerPassword, perm)
	if err != nil {
		return wrap(err, "standard security handler")
	}

	encrypt := doc.Alloc(sec.AsDict())
	sec.encRef = encrypt.Ref()

	doc.sec = sec
	doc.encrypt = encrypt
	return nil
}

// IsEncrypted reports whether encryption has been enabled for the document.
func (doc *Document) IsEncrypted() bool {
	return doc.sec != nil
}

// Permissions returns the permission mask of an encrypted document.
// For unencrypted documents, PermAll is returned.
func (doc *Document) Permissions() Perm {
	if doc.sec == nil {
		return PermAll
	}
	return doc.sec.P
}

// SetCatalog sets the document catalog.  The first call allocates the
// catalog object, later calls replace its payload.
func (doc *Document) SetCatalog(cat *Catalog) *IndirectObject {
	dict := cat.AsDict()
	if doc.Root == nil {
		doc.Root = doc.Alloc(dict)
	} else {
		doc.Root.Payload = dict
	}
	return doc.Root
}

// SetInfo sets the document information dictionary.  The first call
// allocates the Info object, later calls replace its payload.
func (doc *Document) SetInfo(info *Info) *IndirectObject {
	dict := info.AsDict()
	if doc.Info == nil {
		doc.Info = doc.Alloc(dict)
	} else {
		doc.Info.Payload = dict
	}
	return doc.Info
}
