// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jsonreader

import "fmt"

// ObjectHandler is the base of handlers that parse a JSON object key by
// key. Embedders call Init with themselves so that child handlers return
// control to the outermost handler.
type ObjectHandler struct {
	BaseHandler
	self       Handler
	depth      int
	currentKey string
}

// Init records the handler that embeds h.
func (h *ObjectHandler) Init(self Handler) {
	h.self = self
}

// Reset prepares the handler for a new object.
func (h *ObjectHandler) Reset(parent Handler) {
	h.BaseHandler.Reset(parent)
	h.depth = 0
	h.currentKey = ""
}

// Self returns the handler that embeds h.
func (h *ObjectHandler) Self() Handler {
	if h.self == nil {
		return h
	}
	return h.self
}

// CurrentKey returns the key whose value is being parsed.
func (h *ObjectHandler) CurrentKey() string {
	return h.currentKey
}

func (h *ObjectHandler) ReadObjectStart() Handler {
	h.depth++
	if h.depth > 1 {
		return h.BaseHandler.ReadObjectStart()
	}
	return h.Self()
}

func (h *ObjectHandler) ReadObjectEnd() Handler {
	h.currentKey = ""
	h.depth--
	return h.Parent()
}

func (h *ObjectHandler) ReportWarning(warning string, context []string) {
	if h.currentKey != "" {
		context = append(context, h.currentKey)
	}
	h.BaseHandler.ReportWarning(warning, context)
}

// Property hands the value of key to child, which writes it to value and
// then returns control to the handler that embeds h.
func Property[T any](h *ObjectHandler, key string, child ValueHandler[T], value *T) Handler {
	h.currentKey = key
	child.Reset(h.Self(), value)
	return child
}

// ExtensibleObject carries the members every generated class inherits.
type ExtensibleObject struct {
	// Extensions maps extension names to parsed extension objects, or to
	// generic JSON values for extensions without a registered handler.
	Extensions map[string]any `json:"extensions,omitempty"`

	// Extras holds application-specific data.
	Extras any `json:"extras,omitempty"`
}

// Extension returns the named extension, if present.
func (o *ExtensibleObject) Extension(name string) (any, bool) {
	v, ok := o.Extensions[name]
	return v, ok
}

// ExtensibleObjectHandler parses the members of ExtensibleObject and
// warns about keys nobody claims.
type ExtensibleObjectHandler struct {
	ObjectHandler
	context    *ExtensionContext
	object     *ExtensibleObject
	extras     JsonValueHandler
	extensions *extensionsHandler
}

// NewExtensibleObjectHandler returns a handler for objects with no
// properties of their own.
func NewExtensibleObjectHandler(context *ExtensionContext) *ExtensibleObjectHandler {
	h := &ExtensibleObjectHandler{}
	h.Init(h, context)
	return h
}

// Init records the embedding handler and the extension registry.
func (h *ExtensibleObjectHandler) Init(self Handler, context *ExtensionContext) {
	h.ObjectHandler.Init(self)
	h.context = context
}

// Context returns the extension registry the handler was built with.
func (h *ExtensibleObjectHandler) Context() *ExtensionContext {
	return h.context
}

// Reset prepares the handler to parse into o.
func (h *ExtensibleObjectHandler) Reset(parent Handler, o *ExtensibleObject) {
	h.ObjectHandler.Reset(parent)
	h.object = o
}

func (h *ExtensibleObjectHandler) ReadObjectKey(key string) Handler {
	return h.ReadObjectKeyExtensibleObject("ExtensibleObject", key, h.object)
}

// ReadObjectKeyExtensibleObject dispatches the keys shared by all
// extensible objects. objectType is the schema title of the most derived
// class and selects the extensions that may attach to it.
func (h *ExtensibleObjectHandler) ReadObjectKeyExtensibleObject(objectType, key string, o *ExtensibleObject) Handler {
	switch key {
	case "extras":
		return Property[any](&h.ObjectHandler, key, &h.extras, &o.Extras)
	case "extensions":
		if h.extensions == nil {
			h.extensions = newExtensionsHandler(h.context)
		}
		h.currentKey = key
		h.extensions.reset(h.Self(), o, objectType)
		return h.extensions
	}

	h.currentKey = key
	h.Self().ReportWarning(fmt.Sprintf("The property %q is not defined on %s and has been ignored.", key, objectType), nil)
	return h.IgnoreAndContinue(h.Self())
}

// extensionsHandler parses the "extensions" object. Each member goes to
// the handler registered for it or is kept as a generic JSON value.
type extensionsHandler struct {
	ObjectHandler
	context    *ExtensionContext
	object     *ExtensibleObject
	objectType string
	value      JsonValueHandler
	pending    *any
	pendingKey string
}

func newExtensionsHandler(context *ExtensionContext) *extensionsHandler {
	h := &extensionsHandler{context: context}
	h.Init(h)
	return h
}

func (h *extensionsHandler) reset(parent Handler, o *ExtensibleObject, objectType string) {
	h.ObjectHandler.Reset(parent)
	h.object = o
	h.objectType = objectType
	h.pending = nil
}

func (h *extensionsHandler) ReadObjectKey(name string) Handler {
	h.commit()
	h.currentKey = name

	switch h.context.State(name) {
	case Disabled:
		return h.IgnoreAndContinue(h)
	case Enabled:
		if ext, ok := h.context.create(h.objectType, name); ok {
			if h.object.Extensions == nil {
				h.object.Extensions = make(map[string]any)
			}
			ext.ResetExtension(h, h.object, name)
			return ext
		}
	}

	h.pending = new(any)
	h.pendingKey = name
	h.value.Reset(h, h.pending)
	return &h.value
}

func (h *extensionsHandler) ReadObjectEnd() Handler {
	h.commit()
	return h.ObjectHandler.ReadObjectEnd()
}

func (h *extensionsHandler) commit() {
	if h.pending == nil {
		return
	}
	if h.object.Extensions == nil {
		h.object.Extensions = make(map[string]any)
	}
	h.object.Extensions[h.pendingKey] = *h.pending
	h.pending = nil
}
