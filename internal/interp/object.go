// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package interp

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/albertocavalcante/classgen/jsonreader"
)

// Object is a parsed instance of a class. Fields maps JSON keys to values:
// nested objects are *Object, arrays are []any, dictionaries are
// map[string]any and everything else has its jsonreader generic form.
type Object struct {
	jsonreader.ExtensibleObject

	// Type is the name of the class the object was parsed as.
	Type string

	Fields map[string]any

	// keys records the order in which fields were read.
	keys []string
}

func (o *Object) set(key string, v any) {
	if o.Fields == nil {
		o.Fields = make(map[string]any)
	}
	if _, ok := o.Fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.Fields[key] = v
}

// Get returns the value of a field.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Fields[key]
	return v, ok
}

// Keys returns the field keys in the order they were read.
func (o *Object) Keys() []string {
	return o.keys
}

// MarshalJSON writes the fields in read order, followed by extensions and
// extras.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	for _, key := range o.keys {
		if err := write(key, o.Fields[key]); err != nil {
			return nil, err
		}
	}
	if len(o.Extensions) > 0 {
		if err := write("extensions", o.Extensions); err != nil {
			return nil, err
		}
	}
	if o.Extras != nil {
		if err := write("extras", o.Extras); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
