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
	"encoding/hex"
	"errors"
	"math/bits"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPadding(t *testing.T) {
	for _, n := range []int{0, 10, 32, 40} {
		passwd := strings.Repeat("x", n)
		padded, err := padPasswd(passwd)
		if err != nil {
			t.Fatal(err)
		}
		if len(padded) != 32 {
			t.Fatalf("%d: wrong length %d", n, len(padded))
		}
		k := min(n, 32)
		if !bytes.Equal(padded[:k], []byte(passwd[:k])) {
			t.Errorf("%d: password not copied", n)
		}
		if !bytes.Equal(padded[k:], passwdPad[:32-k]) {
			t.Errorf("%d: wrong padding %x", n, padded[k:])
		}
	}

	padded, err := padPasswd("ä")
	if err != nil {
		t.Fatal(err)
	}
	if padded[0] != 0xE4 || padded[1] != passwdPad[0] {
		t.Errorf("wrong Latin-1 encoding %x", padded[:2])
	}

	_, err = padPasswd("€")
	if err == nil {
		t.Error("non-Latin-1 password accepted")
	}

	// byte strings which are not UTF-8 are used as they are
	for _, raw := range []string{"\xe4", "\xff\x00x", "\x80\x81"} {
		padded, err := padPasswd(raw)
		if err != nil {
			t.Errorf("%q: %v", raw, err)
			continue
		}
		want := append([]byte(raw), passwdPad[:32-len(raw)]...)
		if !bytes.Equal(padded, want) {
			t.Errorf("%q: expected %x but got %x", raw, want, padded)
		}
	}

	// "\xe4" is the Latin-1 form of "ä" and gives the same key
	a, err := newSecurityHandler("\xe4", "", PermAll)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newSecurityHandler("ä", "", PermAll)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.key, b.key) || !bytes.Equal(a.U, b.U) {
		t.Error("raw and UTF-8 passwords give different keys")
	}
}

func TestEncryptBytes(t *testing.T) {
	cases := []struct {
		ref Reference
		out string
	}{
		{Reference{Number: 123, Generation: 0}, "4ad6e3"},
		{Reference{Number: 123, Generation: 1}, "623d65"},
	}
	for _, test := range cases {
		out := encryptBytes([]byte("12345"), test.ref, []byte("foo"))
		if hex.EncodeToString(out) != test.out {
			t.Errorf("%s: expected %s but got %x", test.ref, test.out, out)
		}

		// RC4 is symmetric
		back := encryptBytes([]byte("12345"), test.ref, out)
		if string(back) != "foo" {
			t.Errorf("%s: round trip failed: %q", test.ref, back)
		}
	}
}

func TestObjectKeyLength(t *testing.T) {
	for _, n := range []int{5, 8, 11, 16} {
		key := make([]byte, n)
		k := objectKey(key, Reference{Number: 1})
		if len(k) != min(n+5, 16) {
			t.Errorf("key length %d: wrong object key length %d", n, len(k))
		}
	}
}

func TestSecurityHandler(t *testing.T) {
	cases := []struct {
		user, owner string
		perm        Perm
		O, U, key   string
	}{
		{
			user:  "user",
			owner: "owner",
			perm:  PermAll,
			O:     "94e8094419662a774442fb072e3d9f19e9d130ec09a4d0061e78fe920f7ab62f",
			U:     "392cf0fd4563d6dfc416810ef1a6c17e115d8e47af6b77ef9be04edac0448e70",
			key:   "4da526b3e1",
		},
		{
			perm: PermAll,
			O:    "2055c756c72e1ad702608e8196acad447ad32d17cff583235f6dd15fed7dab67",
			U:    "07cee12c436650209f1808e09d61761f8e4df7eda4342c1d073c43b3a8576e92",
			key:  "0fc87cf08d",
		},
		{
			user:  "user",
			owner: "owner",
			perm:  PermAll &^ PermPrint,
			O:     "94e8094419662a774442fb072e3d9f19e9d130ec09a4d0061e78fe920f7ab62f",
			U:     "275e68683916fe08fa48f92aaafd9949e8ecc8532bdbae480fbf9a4cc69c1296",
			key:   "52cece22ad",
		},
	}
	for i, test := range cases {
		sec, err := newSecurityHandler(test.user, test.owner, test.perm)
		if err != nil {
			t.Fatal(err)
		}
		if got := hex.EncodeToString(sec.O); got != test.O {
			t.Errorf("%d: wrong O, expected %s but got %s", i, test.O, got)
		}
		if got := hex.EncodeToString(sec.U); got != test.U {
			t.Errorf("%d: wrong U, expected %s but got %s", i, test.U, got)
		}
		if got := hex.EncodeToString(sec.key); got != test.key {
			t.Errorf("%d: wrong key, expected %s but got %s", i, test.key, got)
		}
	}
}

func TestEmptyOwnerPassword(t *testing.T) {
	a, err := newSecurityHandler("secret", "", PermAll)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newSecurityHandler("secret", "secret", PermAll)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.O, b.O) || !bytes.Equal(a.key, b.key) {
		t.Error("empty owner password does not fall back to user password")
	}
}

func TestEncryptDict(t *testing.T) {
	sec, err := newSecurityHandler("user", "owner", PermAll&^PermPrint)
	if err != nil {
		t.Fatal(err)
	}
	dict := sec.AsDict()
	want := Dict{
		"Filter": Name("Standard"),
		"V":      Integer(1),
		"R":      Integer(2),
		"O":      String(sec.O),
		"U":      String(sec.U),
		"P":      Integer(-5),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("wrong encryption dictionary (-want +got):\n%s", d)
	}
}

func TestCryptFor(t *testing.T) {
	sec, err := newSecurityHandler("user", "owner", PermAll)
	if err != nil {
		t.Fatal(err)
	}
	sec.encRef = Reference{Number: 3}

	if sec.cryptFor(Reference{Number: 3}) != nil {
		t.Error("encryption dictionary is encrypted")
	}

	crypt := sec.cryptFor(Reference{Number: 2})
	out, err := crypt([]byte("Hello"))
	if err != nil {
		t.Fatal(err)
	}
	if hex.EncodeToString(out) != "a9316d43c5" {
		t.Errorf("wrong ciphertext %x", out)
	}
}

func TestEncryptedString(t *testing.T) {
	key, _ := hex.DecodeString("4da526b3e1")
	crypt := func(buf []byte) ([]byte, error) {
		return encryptBytes(key, Reference{Number: 1}, buf), nil
	}
	buf := &bytes.Buffer{}
	err := (&encoder{buf: buf, crypt: crypt}).encode(String("Hello"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := hex.DecodeString("28bdb93a9c9629")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %x but got %x", want, buf.Bytes())
	}
}

func TestPermissions(t *testing.T) {
	perm, err := PermAll.Set("print_document", false)
	if err != nil {
		t.Fatal(err)
	}
	if perm&PermPrint != 0 {
		t.Error("print permission not cleared")
	}
	if n := bits.OnesCount32(uint32(perm)); n != 31 {
		t.Errorf("wrong number of bits: %d", n)
	}

	perm, err = perm.Set("print_document", true)
	if err != nil {
		t.Fatal(err)
	}
	if perm != PermAll {
		t.Errorf("wrong permissions %08x", uint32(perm))
	}

	perm, err = ParsePerm(map[string]bool{
		"copy_contents":      false,
		"modify_annotations": false,
		"modify_contents":    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if perm != PermAll&^(PermCopy|PermAnnotate) {
		t.Errorf("wrong permissions %08x", uint32(perm))
	}
}

func TestInvalidPermission(t *testing.T) {
	_, err := ParsePerm(map[string]bool{"fly": true})
	var permErr *InvalidPermissionError
	if !errors.As(err, &permErr) {
		t.Fatalf("expected InvalidPermissionError, got %v", err)
	}
	if permErr.Name != "fly" {
		t.Errorf("wrong name %q", permErr.Name)
	}
	msg := err.Error()
	for _, name := range PermissionNames() {
		if !strings.Contains(msg, name) {
			t.Errorf("%q not listed in %q", name, msg)
		}
	}
}
