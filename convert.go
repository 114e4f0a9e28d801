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
	"errors"
	"fmt"
	"reflect"
)

var errKeyType = errors.New("dictionary keys must be strings or names")

// Convert turns a plain Go value into a PDF object.
//
// Supported are nil, booleans, integers, floating point numbers, strings and
// byte slices (which become PDF strings), slices and arrays (which become
// PDF arrays), and maps with string or Name keys (which become PDF
// dictionaries).  Values which already implement Object are returned
// unchanged, so that references to indirect objects can be embedded
// anywhere in the tree.
//
// Values of any other kind cause a *ConversionError.
func Convert(v any) (Object, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Object:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(x), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Integer(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return nil, &ConversionError{
				Kind: rv.Type().String(),
				Err:  fmt.Errorf("value %d out of range", u),
			}
		}
		return Integer(u), nil
	case reflect.Float32, reflect.Float64:
		return Real(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		res := make(Array, rv.Len())
		for i := range res {
			obj, err := Convert(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			res[i] = obj
		}
		return res, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		res := make(Dict, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key()
			if key.Kind() == reflect.Interface {
				key = key.Elem()
			}
			if key.Kind() != reflect.String {
				return nil, &ConversionError{
					Kind: rv.Type().String(),
					Err:  errKeyType,
				}
			}
			obj, err := Convert(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			res[Name(key.String())] = obj
		}
		return res, nil
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
	}

	return nil, &ConversionError{Kind: fmt.Sprintf("%T", v)}
}
