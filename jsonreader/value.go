// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

// JsonValueHandler parses any JSON value into its generic form: nil, bool,
// int64, uint64, float64, string, []any or map[string]any.
type JsonValueHandler struct {
	BaseHandler
	value *any
	stack []*valueFrame
}

type valueFrame struct {
	object map[string]any
	array  []any
	key    string
}

func (h *JsonValueHandler) Reset(parent Handler, value *any) {
	h.BaseHandler.Reset(parent)
	h.value = value
	h.stack = h.stack[:0]
}

// emit stores a complete value in the enclosing container, or finishes
// the handler when there is none.
func (h *JsonValueHandler) emit(v any) Handler {
	if len(h.stack) == 0 {
		*h.value = v
		return h.Parent()
	}
	top := h.stack[len(h.stack)-1]
	if top.object != nil {
		top.object[top.key] = v
	} else {
		top.array = append(top.array, v)
	}
	return h
}

func (h *JsonValueHandler) pop() *valueFrame {
	top := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return top
}

func (h *JsonValueHandler) ReadNull() Handler            { return h.emit(nil) }
func (h *JsonValueHandler) ReadBool(b bool) Handler      { return h.emit(b) }
func (h *JsonValueHandler) ReadInt32(i int32) Handler    { return h.emit(int64(i)) }
func (h *JsonValueHandler) ReadUint32(u uint32) Handler  { return h.emit(int64(u)) }
func (h *JsonValueHandler) ReadInt64(i int64) Handler    { return h.emit(i) }
func (h *JsonValueHandler) ReadUint64(u uint64) Handler  { return h.emit(u) }
func (h *JsonValueHandler) ReadDouble(d float64) Handler { return h.emit(d) }
func (h *JsonValueHandler) ReadString(s string) Handler  { return h.emit(s) }

func (h *JsonValueHandler) ReadObjectStart() Handler {
	h.stack = append(h.stack, &valueFrame{object: make(map[string]any)})
	return h
}

func (h *JsonValueHandler) ReadObjectKey(key string) Handler {
	if len(h.stack) == 0 {
		return h.BaseHandler.ReadObjectKey(key)
	}
	h.stack[len(h.stack)-1].key = key
	return h
}

func (h *JsonValueHandler) ReadObjectEnd() Handler {
	if len(h.stack) == 0 {
		return h.BaseHandler.ReadObjectEnd()
	}
	return h.emit(h.pop().object)
}

func (h *JsonValueHandler) ReadArrayStart() Handler {
	h.stack = append(h.stack, &valueFrame{array: []any{}})
	return h
}

func (h *JsonValueHandler) ReadArrayEnd() Handler {
	if len(h.stack) == 0 {
		return h.BaseHandler.ReadArrayEnd()
	}
	return h.emit(h.pop().array)
}
