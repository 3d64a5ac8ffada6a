// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package jsonreader is a streaming JSON handler chain.
//
// It mirrors the protocol the generated C++ handlers implement: every JSON
// event is delivered to the current Handler, which returns the handler that
// receives the next event. Object handlers dispatch keys to child handlers
// and get control back when the child's value is complete.
package jsonreader

import "strings"

// Handler receives JSON events.
type Handler interface {
	ReadNull() Handler
	ReadBool(b bool) Handler
	ReadInt32(i int32) Handler
	ReadUint32(u uint32) Handler
	ReadInt64(i int64) Handler
	ReadUint64(u uint64) Handler
	ReadDouble(d float64) Handler
	ReadString(s string) Handler
	ReadObjectStart() Handler
	ReadObjectKey(key string) Handler
	ReadObjectEnd() Handler
	ReadArrayStart() Handler
	ReadArrayEnd() Handler

	// ReportWarning passes a warning up the chain. Each handler may add
	// its position to context on the way.
	ReportWarning(warning string, context []string)
}

// ValueHandler parses one value into *T.
type ValueHandler[T any] interface {
	Handler
	Reset(parent Handler, value *T)
}

// ExtensionHandler parses one named extension of an extensible object.
type ExtensionHandler interface {
	Handler
	ResetExtension(parent Handler, o *ExtensibleObject, name string)
}

// BaseHandler implements Handler by rejecting every event: it reports a
// warning, skips the value and returns to the parent. Concrete handlers
// embed it and override the events they accept.
type BaseHandler struct {
	parent Handler
	ignore IgnoreValueHandler
}

// Reset sets the handler that receives control once the value is complete.
func (h *BaseHandler) Reset(parent Handler) {
	h.parent = parent
}

// Parent returns the handler that receives control once the value is
// complete.
func (h *BaseHandler) Parent() Handler {
	return h.parent
}

// IgnoreAndReturnToParent skips the value that starts with the next event.
func (h *BaseHandler) IgnoreAndReturnToParent() Handler {
	h.ignore.Reset(h.parent)
	return &h.ignore
}

// IgnoreAndContinue skips the value that starts with the next event and
// returns to self.
func (h *BaseHandler) IgnoreAndContinue(self Handler) Handler {
	h.ignore.Reset(self)
	return &h.ignore
}

func (h *BaseHandler) reject(kind string) Handler {
	article := "A "
	if strings.ContainsRune("aeiou", rune(kind[0])) {
		article = "An "
	}
	h.ReportWarning(article+kind+" value is not allowed and has been ignored.", nil)
	return h.parent
}

func (h *BaseHandler) ReadNull() Handler            { return h.reject("null") }
func (h *BaseHandler) ReadBool(bool) Handler        { return h.reject("boolean") }
func (h *BaseHandler) ReadInt32(int32) Handler      { return h.reject("integer") }
func (h *BaseHandler) ReadUint32(uint32) Handler    { return h.reject("integer") }
func (h *BaseHandler) ReadInt64(int64) Handler      { return h.reject("integer") }
func (h *BaseHandler) ReadUint64(uint64) Handler    { return h.reject("integer") }
func (h *BaseHandler) ReadDouble(float64) Handler   { return h.reject("double") }
func (h *BaseHandler) ReadString(string) Handler    { return h.reject("string") }
func (h *BaseHandler) ReadObjectKey(string) Handler { return h.reject("object key") }
func (h *BaseHandler) ReadObjectEnd() Handler       { return h.reject("object end") }
func (h *BaseHandler) ReadArrayEnd() Handler        { return h.reject("array end") }

func (h *BaseHandler) ReadObjectStart() Handler {
	h.ReportWarning("An object value is not allowed and has been ignored.", nil)
	return h.IgnoreAndReturnToParent().ReadObjectStart()
}

func (h *BaseHandler) ReadArrayStart() Handler {
	h.ReportWarning("An array value is not allowed and has been ignored.", nil)
	return h.IgnoreAndReturnToParent().ReadArrayStart()
}

func (h *BaseHandler) ReportWarning(warning string, context []string) {
	if h.parent != nil {
		h.parent.ReportWarning(warning, context)
	}
}

// IgnoreValueHandler consumes exactly one value, however deeply nested,
// and then returns to its parent.
type IgnoreValueHandler struct {
	parent Handler
	depth  int
}

// Reset prepares the handler to skip the next value.
func (h *IgnoreValueHandler) Reset(parent Handler) {
	h.parent = parent
	h.depth = 0
}

func (h *IgnoreValueHandler) scalar() Handler {
	if h.depth == 0 {
		return h.parent
	}
	return h
}

func (h *IgnoreValueHandler) open() Handler {
	h.depth++
	return h
}

func (h *IgnoreValueHandler) close() Handler {
	h.depth--
	if h.depth <= 0 {
		return h.parent
	}
	return h
}

func (h *IgnoreValueHandler) ReadNull() Handler            { return h.scalar() }
func (h *IgnoreValueHandler) ReadBool(bool) Handler        { return h.scalar() }
func (h *IgnoreValueHandler) ReadInt32(int32) Handler      { return h.scalar() }
func (h *IgnoreValueHandler) ReadUint32(uint32) Handler    { return h.scalar() }
func (h *IgnoreValueHandler) ReadInt64(int64) Handler      { return h.scalar() }
func (h *IgnoreValueHandler) ReadUint64(uint64) Handler    { return h.scalar() }
func (h *IgnoreValueHandler) ReadDouble(float64) Handler   { return h.scalar() }
func (h *IgnoreValueHandler) ReadString(string) Handler    { return h.scalar() }
func (h *IgnoreValueHandler) ReadObjectStart() Handler     { return h.open() }
func (h *IgnoreValueHandler) ReadObjectKey(string) Handler { return h }
func (h *IgnoreValueHandler) ReadObjectEnd() Handler       { return h.close() }
func (h *IgnoreValueHandler) ReadArrayStart() Handler      { return h.open() }
func (h *IgnoreValueHandler) ReadArrayEnd() Handler        { return h.close() }

func (h *IgnoreValueHandler) ReportWarning(warning string, context []string) {
	if h.parent != nil {
		h.parent.ReportWarning(warning, context)
	}
}
