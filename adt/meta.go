package adt

import (
	"sort"
	"sync"
)

// Meta is descriptive metadata for an exported operation, intended for tooling.
// It is kept in development mode only and never alters the behaviour of the
// operation it describes.
type Meta struct {
	Name       string // e.g. "Either.Right#map"
	Signature  string // e.g. "map(f func(R) R)"
	Type       string // e.g. "(Either L R).(R -> R) -> Either L R"
	Category   string
	Stability  string // "experimental", "stable", …
	Complexity string
	Doc        string
}

var annotations = struct {
	sync.RWMutex
	meta map[string]Meta
}{meta: make(map[string]Meta)}

// Annotate attaches metadata to the operation identified by key. It is a
// no-op in production mode.
func Annotate(key string, meta Meta) {
	if isProduction() {
		return
	}
	annotations.Lock()
	defer annotations.Unlock()
	if meta.Name == "" {
		meta.Name = key
	}
	annotations.meta[key] = meta
}

// Describe returns the metadata for the operation identified by key. In
// production mode no metadata is available.
func Describe(key string) (Meta, bool) {
	if isProduction() {
		return Meta{}, false
	}
	annotations.RLock()
	defer annotations.RUnlock()
	m, ok := annotations.meta[key]
	return m, ok
}

// Annotated returns the keys of all annotated operations in sorted order,
// or nil in production mode.
func Annotated() []string {
	if isProduction() {
		return nil
	}
	annotations.RLock()
	defer annotations.RUnlock()
	keys := make([]string, 0, len(annotations.meta))
	for k := range annotations.meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
