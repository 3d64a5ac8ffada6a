// SPDX-License-Identifier: MIT

package classmodel

import "slices"

// orderedSet keeps the first occurrence of each key in insertion order.
type orderedSet[T any] struct {
	m     map[string]T
	order []string
}

func newOrderedSet[T any]() *orderedSet[T] {
	return &orderedSet[T]{
		m: make(map[string]T),
	}
}

func (s *orderedSet[T]) add(key string, value T) {
	if _, exists := s.m[key]; exists {
		return
	}
	s.order = append(s.order, key)
	s.m[key] = value
}

func (s *orderedSet[T]) remove(key string) {
	if _, exists := s.m[key]; !exists {
		return
	}
	delete(s.m, key)
	s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
}

// values returns the values in first-seen order.
func (s *orderedSet[T]) values() []T {
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.m[k])
	}
	return out
}

// sortedKeys returns the keys sorted lexicographically.
func (s *orderedSet[T]) sortedKeys() []string {
	sorted := slices.Clone(s.order)
	slices.Sort(sorted)
	return sorted
}

func newStringSet(items ...string) *orderedSet[string] {
	s := newOrderedSet[string]()
	addStrings(s, items...)
	return s
}

func addStrings(s *orderedSet[string], items ...string) {
	for _, item := range items {
		s.add(item, item)
	}
}
