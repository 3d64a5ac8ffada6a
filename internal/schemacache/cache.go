// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package schemacache loads schema documents and resolves "$ref" pointers.
//
// Documents are cached in a bounded LRU shared by all generation calls.
// Reference resolution is relative to a context stack that belongs to a
// single call: every call obtains its own Context from NewContext.
package schemacache

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/albertocavalcante/classgen/schema"
)

// DefaultSize is the default number of cached documents.
const DefaultSize = 512

var (
	// ErrNotFound is returned when a document or pointer does not exist.
	ErrNotFound = errors.New("schema not found")

	// ErrEmptyContext is returned when a document-local reference is loaded
	// with nothing on the context stack.
	ErrEmptyContext = errors.New("schema context stack is empty")
)

// Options configures a Cache.
type Options struct {
	// FS, when set, is used instead of the operating system's file system.
	FS fs.FS

	// Root is the directory relative references resolve against when the
	// context stack is empty.
	Root string

	// Size is the LRU capacity. Zero means DefaultSize.
	Size int

	Logger *slog.Logger
}

// Cache is a shared document cache. It is safe for concurrent use.
type Cache struct {
	fsys   fs.FS
	root   string
	docs   *lru.Cache[string, *schema.Schema]
	logger *slog.Logger
}

// New creates a Cache.
func New(opts Options) (*Cache, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}
	docs, err := lru.New[string, *schema.Schema](size)
	if err != nil {
		return nil, fmt.Errorf("schema cache: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	return &Cache{fsys: opts.FS, root: root, docs: docs, logger: logger}, nil
}

// LoadFile loads a document by path. Relative paths resolve against Root.
func (c *Cache) LoadFile(p string) (*schema.Schema, error) {
	return c.document(c.join(c.root, p))
}

// NewContext returns an empty resolution context for one generation call.
func (c *Cache) NewContext() *Context {
	return &Context{cache: c}
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	return c.docs.Len()
}

func (c *Cache) document(p string) (*schema.Schema, error) {
	if doc, ok := c.docs.Get(p); ok {
		return doc, nil
	}

	data, err := c.read(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	doc, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	locate(doc, p)

	c.logger.Debug("loaded schema", "path", p, "title", doc.Title)
	c.docs.Add(p, doc)
	return doc, nil
}

// locate assigns locations to a freshly parsed document and every nested
// subschema before the document becomes visible to other callers. Inline
// classes reached through a property keep the path of their document so
// that their own references stay relative to it.
func locate(doc *schema.Schema, p string) {
	doc.Location = p
	locateChildren(doc, p+"#")
}

func locateChildren(s *schema.Schema, prefix string) {
	at := func(child *schema.Schema, ptr string) {
		if child == nil {
			return
		}
		child.Location = prefix + ptr
		locateChildren(child, prefix+ptr)
	}
	for name, def := range s.Defs {
		at(def, "/$defs/"+escape(name))
	}
	for name, def := range s.Definitions {
		at(def, "/definitions/"+escape(name))
	}
	for _, ns := range s.Props {
		at(ns.Schema, "/properties/"+escape(ns.Name))
	}
	at(s.Items, "/items")
	at(s.AdditionalProperties, "/additionalProperties")
	for i, sub := range s.AllOf {
		at(sub, "/allOf/"+strconv.Itoa(i))
	}
	for i, sub := range s.AnyOf {
		at(sub, "/anyOf/"+strconv.Itoa(i))
	}
	for i, sub := range s.OneOf {
		at(sub, "/oneOf/"+strconv.Itoa(i))
	}
}

func (c *Cache) read(p string) ([]byte, error) {
	if c.fsys != nil {
		return fs.ReadFile(c.fsys, p)
	}
	return os.ReadFile(p)
}

func (c *Cache) join(dir, rel string) string {
	if c.fsys != nil {
		if path.IsAbs(rel) {
			return path.Clean(strings.TrimPrefix(rel, "/"))
		}
		return path.Join(dir, rel)
	}
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(dir, rel)
}

func (c *Cache) dir(p string) string {
	if c.fsys != nil {
		return path.Dir(p)
	}
	return filepath.Dir(p)
}

// Context resolves references relative to a stack of schemas. A Context
// belongs to a single generation call and must not be shared.
type Context struct {
	cache *Cache
	stack []*schema.Schema
}

// PushContext makes s the schema that relative references resolve against.
func (x *Context) PushContext(s *schema.Schema) {
	x.stack = append(x.stack, s)
}

// PopContext removes the most recently pushed schema.
func (x *Context) PopContext() {
	if n := len(x.stack); n > 0 {
		x.stack = x.stack[:n-1]
	}
}

// Depth returns the number of schemas on the stack.
func (x *Context) Depth() int {
	return len(x.stack)
}

// Load resolves ref against the current context.
func (x *Context) Load(ref string) (*schema.Schema, error) {
	file, frag, _ := strings.Cut(ref, "#")

	var docPath string
	top := x.top()
	switch {
	case file == "" && top == "":
		return nil, fmt.Errorf("load %q: %w", ref, ErrEmptyContext)
	case file == "":
		docPath = top
	case top == "":
		docPath = x.cache.join(x.cache.root, file)
	default:
		docPath = x.cache.join(x.cache.dir(top), file)
	}

	doc, err := x.cache.document(docPath)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", ref, err)
	}
	if frag == "" || frag == "/" {
		return doc, nil
	}

	sub, err := pointer(doc, frag)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", ref, err)
	}
	if sub.Location == "" {
		cp := *sub
		cp.Location = docPath + "#" + frag
		sub = &cp
	}
	return sub, nil
}

// top returns the document path of the innermost context schema.
func (x *Context) top() string {
	for i := len(x.stack) - 1; i >= 0; i-- {
		if loc := x.stack[i].Location; loc != "" {
			file, _, _ := strings.Cut(loc, "#")
			return file
		}
	}
	return ""
}

// pointer walks a JSON pointer through the schema keywords that can hold
// subschemas.
func pointer(doc *schema.Schema, frag string) (*schema.Schema, error) {
	segs := strings.Split(strings.TrimPrefix(frag, "/"), "/")
	cur := doc
	for i := 0; i < len(segs); i++ {
		seg := unescape(segs[i])
		next := func() (string, bool) {
			if i+1 >= len(segs) {
				return "", false
			}
			i++
			return unescape(segs[i]), true
		}

		var ok bool
		switch seg {
		case "definitions", "$defs":
			var name string
			if name, ok = next(); ok {
				if seg == "$defs" {
					cur, ok = cur.Defs[name]
				} else {
					cur, ok = cur.Definitions[name]
				}
			}
		case "properties":
			var name string
			if name, ok = next(); ok {
				cur, ok = cur.Props.Get(name)
			}
		case "items":
			cur, ok = cur.Items, cur.Items != nil
		case "additionalProperties":
			cur, ok = cur.AdditionalProperties, cur.AdditionalProperties != nil
		case "allOf", "anyOf", "oneOf":
			list := map[string][]*schema.Schema{"allOf": cur.AllOf, "anyOf": cur.AnyOf, "oneOf": cur.OneOf}[seg]
			var idx string
			if idx, ok = next(); ok {
				n, err := strconv.Atoi(idx)
				ok = err == nil && n >= 0 && n < len(list)
				if ok {
					cur = list[n]
				}
			}
		}
		if !ok || cur == nil {
			return nil, fmt.Errorf("%w: pointer #%s", ErrNotFound, frag)
		}
	}
	return cur, nil
}

func escape(seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	return strings.ReplaceAll(seg, "/", "~1")
}

func unescape(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}
