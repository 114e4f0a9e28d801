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
	"crypto/md5"
	"crypto/rc4"
	"encoding/binary"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// EncryptOptions describes how a document is encrypted.
//
// Passwords which are valid UTF-8 are converted to Latin-1, and passwords
// containing characters outside Latin-1 are rejected.  Strings which are not
// valid UTF-8 are used as raw password bytes.
type EncryptOptions struct {
	// UserPassword is needed to open the document.  The empty password
	// allows everybody to open the document, subject to the permissions
	// below.
	UserPassword string

	// OwnerPassword gives full access to the document.  If this is empty,
	// the user password is used.
	OwnerPassword string

	// Permissions maps permission names (see [PermissionNames]) to whether
	// the permission is granted.  Permissions which are not listed are
	// granted.
	Permissions map[string]bool
}

// securityHandler implements revision 2 of the PDF standard security
// handler, with a 40-bit RC4 key.  This is documented in section 7.6.3 of
// PDF 32000-1:2008.
//
// All fields are computed once, when the handler is created, and are never
// modified afterwards.
type securityHandler struct {
	paddedUser  []byte
	paddedOwner []byte

	// P is the permission mask.
	P Perm

	// O is the owner password verification value.
	O []byte

	// U is the user password verification value.
	U []byte

	// key is the file encryption key.
	key []byte

	// encRef refers to the encryption dictionary, which is not encrypted.
	encRef Reference
}

const keyBytes = 5

func newSecurityHandler(userPwd, ownerPwd string, perm Perm) (*securityHandler, error) {
	if ownerPwd == "" {
		ownerPwd = userPwd
	}
	paddedUser, err := padPasswd(userPwd)
	if err != nil {
		return nil, err
	}
	paddedOwner, err := padPasswd(ownerPwd)
	if err != nil {
		return nil, err
	}

	sec := &securityHandler{
		paddedUser:  paddedUser,
		paddedOwner: paddedOwner,
		P:           perm,
	}
	sec.O = computeO(paddedUser, paddedOwner)
	sec.key = sec.computeFileEncryptionKey()
	sec.U = computeU(sec.key)
	return sec, nil
}

// Algorithm 3: compute O.
func computeO(paddedUser, paddedOwner []byte) []byte {
	sum := md5.Sum(paddedOwner)
	c, _ := rc4.NewCipher(sum[:keyBytes])
	O := make([]byte, 32)
	c.XORKeyStream(O, paddedUser)
	return O
}

// Algorithm 2: compute the file encryption key.
func (sec *securityHandler) computeFileEncryptionKey() []byte {
	h := md5.New()
	h.Write(sec.paddedUser)
	h.Write(sec.O)
	h.Write(binary.LittleEndian.AppendUint32(nil, uint32(sec.P)))
	return h.Sum(nil)[:keyBytes]
}

// Algorithm 4: compute U.
func computeU(key []byte) []byte {
	c, _ := rc4.NewCipher(key)
	U := make([]byte, 32)
	c.XORKeyStream(U, passwdPad)
	return U
}

// objectKey computes the encryption key for the strings and streams of the
// object with the given reference.
func objectKey(key []byte, ref Reference) []byte {
	h := md5.New()
	h.Write(key)
	num := ref.Number
	gen := ref.Generation
	h.Write([]byte{
		byte(num), byte(num >> 8), byte(num >> 16),
		byte(gen), byte(gen >> 8)})
	l := min(len(key)+5, 16)
	return h.Sum(nil)[:l]
}

// encryptBytes encrypts buf in place, using algorithm 1 from section 7.6.2
// of PDF 32000-1:2008.
func encryptBytes(key []byte, ref Reference, buf []byte) []byte {
	c, _ := rc4.NewCipher(objectKey(key, ref))
	c.XORKeyStream(buf, buf)
	return buf
}

// cryptFor returns the transformation for strings and streams inside the
// given object.  The encryption dictionary itself is not encrypted.
func (sec *securityHandler) cryptFor(ref Reference) cryptFunc {
	if ref.Number == sec.encRef.Number {
		return nil
	}
	return func(buf []byte) ([]byte, error) {
		return encryptBytes(sec.key, ref, buf), nil
	}
}

// AsDict returns the encryption dictionary.
func (sec *securityHandler) AsDict() Dict {
	return Dict{
		"Filter": Name("Standard"),
		"V":      Integer(1),
		"R":      Integer(2),
		"O":      String(sec.O),
		"U":      String(sec.U),
		"P":      Integer(int32(sec.P)),
	}
}

// padPasswd converts a password to Latin-1 and pads or truncates the
// result to 32 bytes.  Invalid UTF-8 is taken to be already encoded.
func padPasswd(passwd string) ([]byte, error) {
	if !utf8.ValidString(passwd) {
		return padBytes([]byte(passwd)), nil
	}
	buf, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(passwd))
	if err != nil {
		return nil, errInvalidPassword
	}
	return padBytes(buf), nil
}

// padBytes returns a slice of length 32, which contains the first 32 bytes
// of passwd, followed by padding as needed.
func padBytes(passwd []byte) []byte {
	padded := make([]byte, 32)
	n := copy(padded, passwd)
	copy(padded[n:], passwdPad)
	return padded
}

var passwdPad = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}
