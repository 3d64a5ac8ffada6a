// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package interp

import (
	"github.com/albertocavalcante/classgen/internal/classmodel"
	"github.com/albertocavalcante/classgen/jsonreader"
)

// ClassHandler parses one object of a class. Field values are parsed into
// scratch slots and stored on the object when it ends.
type ClassHandler struct {
	jsonreader.ExtensibleObjectHandler
	reg      *Registry
	class    *Class
	object   *Object
	children map[string]jsonreader.Handler
	commits  []func()
}

var (
	_ jsonreader.ValueHandler[Object] = (*ClassHandler)(nil)
	_ jsonreader.ExtensionHandler     = (*ClassHandler)(nil)
)

func (r *Registry) newHandler(c *Class) *ClassHandler {
	h := &ClassHandler{
		reg:      r,
		class:    c,
		children: make(map[string]jsonreader.Handler),
	}
	h.Init(h, r.context)
	return h
}

// Class returns the class h parses.
func (h *ClassHandler) Class() *Class {
	return h.class
}

func (h *ClassHandler) Reset(parent jsonreader.Handler, o *Object) {
	h.ExtensibleObjectHandler.Reset(parent, &o.ExtensibleObject)
	o.Type = h.class.Name
	if o.Fields == nil {
		o.Fields = make(map[string]any)
	}
	h.object = o
	h.commits = h.commits[:0]
}

// ResetExtension parses an extension value into a new object stored on o.
func (h *ClassHandler) ResetExtension(parent jsonreader.Handler, o *jsonreader.ExtensibleObject, name string) {
	obj := &Object{}
	o.Extensions[name] = obj
	h.Reset(parent, obj)
}

func (h *ClassHandler) ReadObjectKey(key string) jsonreader.Handler {
	for c := h.class; c != nil; c = c.Base {
		if b, ok := c.lookup(key); ok {
			return h.bind(b)
		}
	}
	return h.ReadObjectKeyExtensibleObject(h.class.Title, key, &h.object.ExtensibleObject)
}

func (h *ClassHandler) ReadObjectEnd() jsonreader.Handler {
	for _, commit := range h.commits {
		commit()
	}
	h.commits = h.commits[:0]
	return h.ExtensibleObjectHandler.ReadObjectEnd()
}

func (h *ClassHandler) bind(b binding) jsonreader.Handler {
	switch b.shape.Kind {
	case classmodel.ShapeString:
		return bindSlot[string](h, b.key, child(h, b.key, newT[jsonreader.StringHandler]))
	case classmodel.ShapeInteger:
		return bindSlot[int64](h, b.key, child(h, b.key, newT[jsonreader.IntegerHandler[int64]]))
	case classmodel.ShapeNumber:
		return bindSlot[float64](h, b.key, child(h, b.key, newT[jsonreader.DoubleHandler]))
	case classmodel.ShapeBoolean:
		return bindSlot[bool](h, b.key, child(h, b.key, newT[jsonreader.BoolHandler]))
	case classmodel.ShapeClass:
		c := child(h, b.key, func() *ClassHandler {
			return h.reg.newHandler(h.reg.classes[b.shape.Class])
		})
		obj := &Object{}
		return bindValue[Object](h, b.key, c, obj, func() any { return obj })
	case classmodel.ShapeArray:
		return bindSlot[[]any](h, b.key, child(h, b.key, func() *jsonreader.ArrayHandler[any] {
			return jsonreader.NewArrayHandler(h.reg.elements(b.shape.Elem))
		}))
	case classmodel.ShapeDictionary:
		return bindSlot[map[string]any](h, b.key, child(h, b.key, func() *jsonreader.DictionaryHandler[any] {
			return jsonreader.NewDictionaryHandler(h.reg.elements(b.shape.Elem))
		}))
	default:
		return bindSlot[any](h, b.key, child(h, b.key, newT[jsonreader.JsonValueHandler]))
	}
}

// bindSlot hands key to c with a fresh slot that is stored on the current
// object when it ends.
func bindSlot[T any](h *ClassHandler, key string, c jsonreader.ValueHandler[T]) jsonreader.Handler {
	slot := new(T)
	return bindValue[T](h, key, c, slot, func() any { return *slot })
}

func bindValue[T any](h *ClassHandler, key string, c jsonreader.ValueHandler[T], slot *T, stored func() any) jsonreader.Handler {
	o := h.object
	h.commits = append(h.commits, func() { o.set(key, stored()) })
	return jsonreader.Property(&h.ObjectHandler, key, c, slot)
}

// child returns the handler for key, creating it on first use.
func child[H jsonreader.Handler](h *ClassHandler, key string, create func() H) H {
	if c, ok := h.children[key]; ok {
		return c.(H)
	}
	c := create()
	h.children[key] = c
	return c
}

func newT[T any]() *T {
	return new(T)
}

// elements returns a factory for handlers of container elements. Nested
// containers are kept as generic JSON values.
func (r *Registry) elements(elem *classmodel.Shape) func() jsonreader.ValueHandler[any] {
	if elem == nil {
		return jsonValue
	}
	switch elem.Kind {
	case classmodel.ShapeString:
		return func() jsonreader.ValueHandler[any] {
			return jsonreader.NewBoxed[string](new(jsonreader.StringHandler))
		}
	case classmodel.ShapeInteger:
		return func() jsonreader.ValueHandler[any] {
			return jsonreader.NewBoxed[int64](new(jsonreader.IntegerHandler[int64]))
		}
	case classmodel.ShapeNumber:
		return func() jsonreader.ValueHandler[any] {
			return jsonreader.NewBoxed[float64](new(jsonreader.DoubleHandler))
		}
	case classmodel.ShapeBoolean:
		return func() jsonreader.ValueHandler[any] {
			return jsonreader.NewBoxed[bool](new(jsonreader.BoolHandler))
		}
	case classmodel.ShapeClass:
		c := r.classes[elem.Class]
		return func() jsonreader.ValueHandler[any] {
			return classElement{r.newHandler(c)}
		}
	default:
		return jsonValue
	}
}

func jsonValue() jsonreader.ValueHandler[any] {
	return new(jsonreader.JsonValueHandler)
}

// classElement stores a parsed object in an any slot.
type classElement struct {
	*ClassHandler
}

func (e classElement) Reset(parent jsonreader.Handler, v *any) {
	o := &Object{}
	*v = o
	e.ClassHandler.Reset(parent, o)
}
