// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

import "math"

// StringHandler parses a JSON string.
type StringHandler struct {
	BaseHandler
	value *string
}

func (h *StringHandler) Reset(parent Handler, value *string) {
	h.BaseHandler.Reset(parent)
	h.value = value
}

func (h *StringHandler) ReadString(s string) Handler {
	*h.value = s
	return h.Parent()
}

// BoolHandler parses a JSON boolean.
type BoolHandler struct {
	BaseHandler
	value *bool
}

func (h *BoolHandler) Reset(parent Handler, value *bool) {
	h.BaseHandler.Reset(parent)
	h.value = value
}

func (h *BoolHandler) ReadBool(b bool) Handler {
	*h.value = b
	return h.Parent()
}

// Integer is the set of types IntegerHandler can parse into.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntegerHandler parses a JSON number into an integer type. Values that
// do not fit T, and doubles with a fractional part, are reported and
// skipped.
type IntegerHandler[T Integer] struct {
	BaseHandler
	value *T
}

func (h *IntegerHandler[T]) Reset(parent Handler, value *T) {
	h.BaseHandler.Reset(parent)
	h.value = value
}

func (h *IntegerHandler[T]) ReadInt32(i int32) Handler   { return h.signed(int64(i)) }
func (h *IntegerHandler[T]) ReadUint32(u uint32) Handler { return h.unsigned(uint64(u)) }
func (h *IntegerHandler[T]) ReadInt64(i int64) Handler   { return h.signed(i) }
func (h *IntegerHandler[T]) ReadUint64(u uint64) Handler { return h.unsigned(u) }

func (h *IntegerHandler[T]) ReadDouble(d float64) Handler {
	switch {
	case d != math.Trunc(d) || math.IsInf(d, 0):
		h.ReportWarning("A non-integer number was found where an integer was expected.", nil)
		return h.Parent()
	case d < 0:
		if d < math.MinInt64 {
			return h.outOfRange()
		}
		return h.signed(int64(d))
	default:
		if d >= math.MaxUint64 {
			return h.outOfRange()
		}
		return h.unsigned(uint64(d))
	}
}

func (h *IntegerHandler[T]) signed(i int64) Handler {
	v := T(i)
	if int64(v) != i || (v < 0) != (i < 0) {
		return h.outOfRange()
	}
	*h.value = v
	return h.Parent()
}

func (h *IntegerHandler[T]) unsigned(u uint64) Handler {
	v := T(u)
	if uint64(v) != u || v < 0 {
		return h.outOfRange()
	}
	*h.value = v
	return h.Parent()
}

func (h *IntegerHandler[T]) outOfRange() Handler {
	h.ReportWarning("An integer value is out of range and has been ignored.", nil)
	return h.Parent()
}

// DoubleHandler parses any JSON number as a float64.
type DoubleHandler struct {
	BaseHandler
	value *float64
}

func (h *DoubleHandler) Reset(parent Handler, value *float64) {
	h.BaseHandler.Reset(parent)
	h.value = value
}

func (h *DoubleHandler) ReadInt32(i int32) Handler    { return h.set(float64(i)) }
func (h *DoubleHandler) ReadUint32(u uint32) Handler  { return h.set(float64(u)) }
func (h *DoubleHandler) ReadInt64(i int64) Handler    { return h.set(float64(i)) }
func (h *DoubleHandler) ReadUint64(u uint64) Handler  { return h.set(float64(u)) }
func (h *DoubleHandler) ReadDouble(d float64) Handler { return h.set(d) }

func (h *DoubleHandler) set(d float64) Handler {
	*h.value = d
	return h.Parent()
}

// Boxed adapts a handler that completes on a single event so that its
// value lands in an any. Handlers that span several events, such as
// objects and arrays, cannot be boxed.
type Boxed[T any] struct {
	inner  ValueHandler[T]
	value  T
	target *any
}

// NewBoxed wraps inner.
func NewBoxed[T any](inner ValueHandler[T]) *Boxed[T] {
	return &Boxed[T]{inner: inner}
}

func (b *Boxed[T]) Reset(parent Handler, target *any) {
	var zero T
	b.value = zero
	b.target = target
	b.inner.Reset(parent, &b.value)
}

func (b *Boxed[T]) store(next Handler) Handler {
	*b.target = b.value
	return next
}

func (b *Boxed[T]) ReadNull() Handler              { return b.store(b.inner.ReadNull()) }
func (b *Boxed[T]) ReadBool(v bool) Handler        { return b.store(b.inner.ReadBool(v)) }
func (b *Boxed[T]) ReadInt32(i int32) Handler      { return b.store(b.inner.ReadInt32(i)) }
func (b *Boxed[T]) ReadUint32(u uint32) Handler    { return b.store(b.inner.ReadUint32(u)) }
func (b *Boxed[T]) ReadInt64(i int64) Handler      { return b.store(b.inner.ReadInt64(i)) }
func (b *Boxed[T]) ReadUint64(u uint64) Handler    { return b.store(b.inner.ReadUint64(u)) }
func (b *Boxed[T]) ReadDouble(d float64) Handler   { return b.store(b.inner.ReadDouble(d)) }
func (b *Boxed[T]) ReadString(s string) Handler    { return b.store(b.inner.ReadString(s)) }
func (b *Boxed[T]) ReadObjectStart() Handler       { return b.store(b.inner.ReadObjectStart()) }
func (b *Boxed[T]) ReadObjectKey(k string) Handler { return b.store(b.inner.ReadObjectKey(k)) }
func (b *Boxed[T]) ReadObjectEnd() Handler         { return b.store(b.inner.ReadObjectEnd()) }
func (b *Boxed[T]) ReadArrayStart() Handler        { return b.store(b.inner.ReadArrayStart()) }
func (b *Boxed[T]) ReadArrayEnd() Handler          { return b.store(b.inner.ReadArrayEnd()) }

func (b *Boxed[T]) ReportWarning(warning string, context []string) {
	b.inner.ReportWarning(warning, context)
}
