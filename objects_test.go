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
	"math"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-17), "-17"},
		{Real(1.5), "1.5"},
		{Real(3), "3."},
		{Real(-0.25), "-0.25"},
		{String("a"), "(a)"},
		{String(""), "()"},
		{String("a (test version)"), `(a \(test version\))`},
		{String(`back\slash`), `(back\\slash)`},
		{String("line\r\nend"), "(line\\r\nend)"},
		{Name("Type"), "/Type"},
		{Name("A#B"), "/A#23B"},
		{Name("x/y"), "/x#2fy"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Dict{}, "<<>>"},
		{Dict(nil), "null"},
		{Dict{"Bar": String("foo")}, "<< /Bar (foo)\n>>"},
		{Dict{"B": Integer(2), "A": Integer(1)}, "<< /A 1\n /B 2\n>>"},
		{Dict{"A": nil, "B": Integer(2)}, "<< /B 2\n>>"},
		{Dict{"K": Array{Name("X"), Dict{"Y": Bool(true)}}}, "<< /K [/X << /Y true\n>>]\n>>"},
		{Reference{Number: 12, Generation: 3}, "12 3 R"},
		{(*IndirectObject)(nil), "null"},
	}
	for _, test := range cases {
		out, err := Format(test.in)
		if err != nil {
			t.Errorf("%v: unexpected error %s", test.in, err)
			continue
		}
		if out != test.out {
			t.Errorf("wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	cases := []Object{
		Name("two words"),
		Name("tab\there"),
		Real(math.NaN()),
		Real(math.Inf(1)),
		Dict{"bad key": Integer(1)},
		Array{Integer(1), Name("a\nb")},
		Dict{"Outer": Dict{"Inner": Real(math.Inf(-1))}},
	}
	for _, test := range cases {
		_, err := Format(test)
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("%v: expected ConversionError, got %v", test, err)
		}
	}
}

func TestIndirectReference(t *testing.T) {
	s := &Store{}
	a := s.Alloc(nil)
	b := s.Alloc(Dict{"Parent": a})
	a.Payload = Dict{"Kids": Array{b}}

	out, err := Format(b.Payload)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<< /Parent 1 0 R\n>>" {
		t.Errorf("wrong reference: %q", out)
	}

	a.Generation = 7
	out, err = Format(b.Payload)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<< /Parent 1 7 R\n>>" {
		t.Errorf("generation not updated: %q", out)
	}
}

func TestPDFMethod(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Dict{"Type": Name("Catalog")}.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "<< /Type /Catalog\n>>" {
		t.Errorf("wrong output %q", buf.String())
	}

	buf.Reset()
	err = Name("a b").PDF(buf)
	if err == nil {
		t.Error("missing error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output %q", buf.String())
	}
}

func TestTextString(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"\t\n\r",
		"ein Bär",
		"o țesătură",
		"中文",
		"日本語",
	}
	for _, test := range cases {
		enc := TextString(test)
		out := enc.AsTextString()
		if out != test {
			t.Errorf("wrong text: %q != %q", out, test)
		}
	}

	if enc := TextString("Bär"); !bytes.Equal(enc, []byte{'B', 0xE4, 'r'}) {
		t.Errorf("wrong single-byte encoding %x", []byte(enc))
	}
	if enc := TextString("€"); !bytes.Equal(enc, []byte{0xFE, 0xFF, 0x20, 0xAC}) {
		t.Errorf("wrong UTF-16 encoding %x", []byte(enc))
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	cases := []struct {
		in  time.Time
		out string
	}{
		{time.Date(1998, 12, 23, 19, 52, 0, 0, PST), "D:19981223195200-08'00'"},
		{time.Date(2020, 12, 24, 16, 30, 12, 0, time.FixedZone("", 90*60)), "D:20201224163012+01'30'"},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "D:20000101000000+00'00'"},
	}
	for _, test := range cases {
		out := string(Date(test.in))
		if out != test.out {
			t.Errorf("wrong date: expected %q but got %q", test.out, out)
		}
	}
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte("(()"))
	f.Add([]byte{0, 1, 2, '\r', '\\'})
	f.Fuzz(func(t *testing.T, data []byte) {
		plain := &bytes.Buffer{}
		err := (&encoder{buf: plain}).encode(String(data))
		if err != nil {
			t.Fatal(err)
		}

		identity := func(buf []byte) ([]byte, error) { return buf, nil }
		noop := &bytes.Buffer{}
		err = (&encoder{buf: noop, crypt: identity}).encode(String(data))
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(plain.Bytes(), noop.Bytes()) {
			t.Errorf("%q != %q", plain.Bytes(), noop.Bytes())
		}

		// unescaped parentheses are impossible, so the string
		// always ends at the last byte
		out := plain.Bytes()
		depth := 0
		for i := 0; i < len(out); i++ {
			switch out[i] {
			case '\\':
				i++
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 && i != len(out)-1 {
					t.Fatalf("string ends early in %q", out)
				}
			}
		}
		if depth != 0 {
			t.Errorf("unbalanced string %q", out)
		}
	})
}

func TestIdentityCryptObjects(t *testing.T) {
	s := &Store{}
	leaf := s.Alloc(String("leaf (with) \\ specials\r\n"))
	list := s.Alloc(Array{
		Integer(-7), Real(0.25), Bool(false), nil,
		String(""), String("\x00\xff"),
		Array{String("nested"), Dict{"K": String(")(")}},
		leaf,
	})
	stream := s.Alloc(Dict{
		"Type":  Name("XObject"),
		"Title": String("stream title"),
		"Refs":  Array{list, leaf},
	})
	err := stream.AppendBytes([]byte("binary \x00\x01\xfe data\nendstream\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.Alloc(Dict{
		"A": Dict{"B": Dict{"C": Array{String("deep"), stream}}},
		"N": Name("a/b#c"),
	})

	identity := func(buf []byte) ([]byte, error) { return buf, nil }
	for obj := range s.All() {
		want, err := obj.Bytes()
		if err != nil {
			t.Fatal(err)
		}
		got := &bytes.Buffer{}
		err = obj.encode(&encoder{buf: got, crypt: identity})
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got.Bytes(), want) {
			t.Errorf("%s: expected %q but got %q", obj.Ref(), want, got.Bytes())
		}
	}
}
