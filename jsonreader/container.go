// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

import "strconv"

// ArrayHandler parses a JSON array whose elements are parsed by a
// handler of type ValueHandler[T]. The element handler is created on
// first use, so recursive element types only allocate as deep as the
// document goes.
type ArrayHandler[T any] struct {
	BaseHandler
	newElem func() ValueHandler[T]
	elem    ValueHandler[T]
	value   *[]T
	open    bool
}

// NewArrayHandler returns an array handler that parses elements with the
// handler built by newElem.
func NewArrayHandler[T any](newElem func() ValueHandler[T]) *ArrayHandler[T] {
	return &ArrayHandler[T]{newElem: newElem}
}

func (h *ArrayHandler[T]) Reset(parent Handler, value *[]T) {
	h.BaseHandler.Reset(parent)
	h.value = value
	h.open = false
}

// next appends a zero element and hands it to the element handler.
func (h *ArrayHandler[T]) next() ValueHandler[T] {
	if h.elem == nil {
		h.elem = h.newElem()
	}
	var zero T
	*h.value = append(*h.value, zero)
	h.elem.Reset(h, &(*h.value)[len(*h.value)-1])
	return h.elem
}

func (h *ArrayHandler[T]) ReadArrayStart() Handler {
	if h.open {
		return h.next().ReadArrayStart()
	}
	h.open = true
	*h.value = []T{}
	return h
}

func (h *ArrayHandler[T]) ReadArrayEnd() Handler {
	if !h.open {
		return h.BaseHandler.ReadArrayEnd()
	}
	h.open = false
	return h.Parent()
}

func (h *ArrayHandler[T]) ReadNull() Handler {
	if !h.open {
		return h.BaseHandler.ReadNull()
	}
	return h.next().ReadNull()
}

func (h *ArrayHandler[T]) ReadBool(b bool) Handler {
	if !h.open {
		return h.BaseHandler.ReadBool(b)
	}
	return h.next().ReadBool(b)
}

func (h *ArrayHandler[T]) ReadInt32(i int32) Handler {
	if !h.open {
		return h.BaseHandler.ReadInt32(i)
	}
	return h.next().ReadInt32(i)
}

func (h *ArrayHandler[T]) ReadUint32(u uint32) Handler {
	if !h.open {
		return h.BaseHandler.ReadUint32(u)
	}
	return h.next().ReadUint32(u)
}

func (h *ArrayHandler[T]) ReadInt64(i int64) Handler {
	if !h.open {
		return h.BaseHandler.ReadInt64(i)
	}
	return h.next().ReadInt64(i)
}

func (h *ArrayHandler[T]) ReadUint64(u uint64) Handler {
	if !h.open {
		return h.BaseHandler.ReadUint64(u)
	}
	return h.next().ReadUint64(u)
}

func (h *ArrayHandler[T]) ReadDouble(d float64) Handler {
	if !h.open {
		return h.BaseHandler.ReadDouble(d)
	}
	return h.next().ReadDouble(d)
}

func (h *ArrayHandler[T]) ReadString(s string) Handler {
	if !h.open {
		return h.BaseHandler.ReadString(s)
	}
	return h.next().ReadString(s)
}

func (h *ArrayHandler[T]) ReadObjectStart() Handler {
	if !h.open {
		return h.BaseHandler.ReadObjectStart()
	}
	return h.next().ReadObjectStart()
}

func (h *ArrayHandler[T]) ReportWarning(warning string, context []string) {
	if h.open && len(*h.value) > 0 {
		context = append(context, "["+strconv.Itoa(len(*h.value)-1)+"]")
	}
	h.BaseHandler.ReportWarning(warning, context)
}

// DictionaryHandler parses a JSON object with arbitrary keys into a map.
// Each value is parsed into a scratch slot that is stored when the next
// key or the end of the object arrives.
type DictionaryHandler[T any] struct {
	ObjectHandler
	newElem    func() ValueHandler[T]
	elem       ValueHandler[T]
	value      *map[string]T
	pending    *T
	pendingKey string
}

// NewDictionaryHandler returns a dictionary handler that parses values
// with the handler built by newElem.
func NewDictionaryHandler[T any](newElem func() ValueHandler[T]) *DictionaryHandler[T] {
	h := &DictionaryHandler[T]{newElem: newElem}
	h.Init(h)
	return h
}

func (h *DictionaryHandler[T]) Reset(parent Handler, value *map[string]T) {
	h.ObjectHandler.Reset(parent)
	h.value = value
	h.pending = nil
}

func (h *DictionaryHandler[T]) ReadObjectStart() Handler {
	next := h.ObjectHandler.ReadObjectStart()
	if next == h.Self() {
		*h.value = make(map[string]T)
	}
	return next
}

func (h *DictionaryHandler[T]) ReadObjectKey(key string) Handler {
	h.commit()
	if h.elem == nil {
		h.elem = h.newElem()
	}
	h.pending = new(T)
	h.pendingKey = key
	return Property(&h.ObjectHandler, key, h.elem, h.pending)
}

func (h *DictionaryHandler[T]) ReadObjectEnd() Handler {
	h.commit()
	return h.ObjectHandler.ReadObjectEnd()
}

func (h *DictionaryHandler[T]) commit() {
	if h.pending == nil {
		return
	}
	(*h.value)[h.pendingKey] = *h.pending
	h.pending = nil
}
