// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// ReadResult is the outcome of Read. Value is nil when Errors is not
// empty.
type ReadResult[T any] struct {
	Value    *T
	Errors   []string
	Warnings []string
}

// Read parses data with h. Syntax errors stop reading and are returned in
// Errors; everything a handler skips is reported in Warnings.
func Read[T any](data []byte, h ValueHandler[T]) ReadResult[T] {
	var result ReadResult[T]
	value := new(T)
	root := &rootHandler{result: &result.Warnings}
	h.Reset(root, value)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		current Handler = h
		stack   []*tokenFrame
	)
	// done marks the end of a value inside an object.
	done := func() {
		if n := len(stack); n > 0 && stack[n-1].object {
			stack[n-1].wantKey = true
		}
	}
	pop := func() {
		if n := len(stack); n > 0 {
			stack = stack[:n-1]
		}
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			break
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, &tokenFrame{object: true, wantKey: true})
				current = current.ReadObjectStart()
			case '[':
				stack = append(stack, &tokenFrame{})
				current = current.ReadArrayStart()
			case '}':
				pop()
				current = current.ReadObjectEnd()
				done()
			case ']':
				pop()
				current = current.ReadArrayEnd()
				done()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].object && stack[n-1].wantKey {
				stack[n-1].wantKey = false
				current = current.ReadObjectKey(v)
				break
			}
			current = current.ReadString(v)
			done()
		case json.Number:
			current = readNumber(current, v)
			done()
		case float64:
			current = current.ReadDouble(v)
			done()
		case bool:
			current = current.ReadBool(v)
			done()
		case nil:
			current = current.ReadNull()
			done()
		}

		if current == nil {
			result.Errors = append(result.Errors, "a handler returned no successor")
			break
		}
	}

	if len(result.Errors) == 0 && current != Handler(root) {
		result.Errors = append(result.Errors, "unexpected end of input")
	}
	if len(result.Errors) == 0 {
		result.Value = value
	}
	return result
}

type tokenFrame struct {
	object  bool
	wantKey bool
}

// readNumber delivers n as the narrowest event that represents it
// exactly.
func readNumber(h Handler, n json.Number) Handler {
	s := n.String()
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		if u <= math.MaxUint32 {
			return h.ReadUint32(uint32(u))
		}
		return h.ReadUint64(u)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i >= math.MinInt32 {
			return h.ReadInt32(int32(i))
		}
		return h.ReadInt64(i)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		h.ReportWarning("The number "+s+" cannot be represented and has been ignored.", nil)
		return h
	}
	return h.ReadDouble(f)
}

// rootHandler sits above the top-level handler. It collects warnings and
// rejects anything after the root value.
type rootHandler struct {
	result *[]string
}

func (r *rootHandler) trailing() Handler {
	r.ReportWarning("Content after the root value has been ignored.", nil)
	return r
}

func (r *rootHandler) ReadNull() Handler            { return r.trailing() }
func (r *rootHandler) ReadBool(bool) Handler        { return r.trailing() }
func (r *rootHandler) ReadInt32(int32) Handler      { return r.trailing() }
func (r *rootHandler) ReadUint32(uint32) Handler    { return r.trailing() }
func (r *rootHandler) ReadInt64(int64) Handler      { return r.trailing() }
func (r *rootHandler) ReadUint64(uint64) Handler    { return r.trailing() }
func (r *rootHandler) ReadDouble(float64) Handler   { return r.trailing() }
func (r *rootHandler) ReadString(string) Handler    { return r.trailing() }
func (r *rootHandler) ReadObjectStart() Handler     { return r.trailing() }
func (r *rootHandler) ReadObjectKey(string) Handler { return r }
func (r *rootHandler) ReadObjectEnd() Handler       { return r }
func (r *rootHandler) ReadArrayStart() Handler      { return r.trailing() }
func (r *rootHandler) ReadArrayEnd() Handler        { return r }

func (r *rootHandler) ReportWarning(warning string, context []string) {
	if len(context) == 0 {
		*r.result = append(*r.result, warning)
		return
	}
	*r.result = append(*r.result, warning+" (at "+FormatPath(context)+")")
}

// FormatPath joins a warning context, innermost entry first, into a path
// such as "children[0].name".
func FormatPath(context []string) string {
	var b strings.Builder
	for _, part := range slices.Backward(context) {
		if b.Len() > 0 && !strings.HasPrefix(part, "[") {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
