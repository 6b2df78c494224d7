package pretty

import (
	"fmt"
	"reflect"
)

// identity distinguishes values that share storage. Two slices are the same
// only if they start at the same element and have the same length.
type identity struct {
	ptr uintptr
	len int
	typ reflect.Type
}

// identityOf returns the identity of reference values. Values without
// shared storage (numbers, strings, arrays, structs) have none.
func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{ptr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{ptr: v.Pointer(), len: v.Len(), typ: v.Type()}, true
	}
	return identity{}, false
}

// classifier turns a value into a node tree. It holds the identities of
// the values currently being expanded on the path from the root.
type classifier struct {
	visited map[identity]struct{}
	nodes   int
}

func newClassifier() *classifier {
	return &classifier{visited: make(map[identity]struct{})}
}

// classify builds the node for v. Categories are tried in a fixed order and
// the first match wins; values that match nothing become leaves.
func (c *classifier) classify(v reflect.Value) Node {
	c.nodes++
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return newLeaf("nil")
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return newLeaf("nil")
	}
	if text, ok := displayHook(v); ok {
		return newLeaf(text)
	}
	for _, cat := range categories {
		if cat.match(v) {
			return cat.build(c, v, false)
		}
	}
	return newLeaf(repr(v))
}

// placeholder returns the elided node for v without expanding it.
func (c *classifier) placeholder(v reflect.Value) Node {
	for _, cat := range categories {
		if cat.match(v) {
			return cat.build(c, v, true)
		}
	}
	return namedObject(typeName(v.Type()), nil, true)
}

// enter marks v as being expanded. It returns false if v is already on the
// current path, in which case the caller must elide it. A true result must
// be paired with a call to leave.
func (c *classifier) enter(v reflect.Value) bool {
	id, ok := identityOf(v)
	if !ok {
		return true
	}
	if _, seen := c.visited[id]; seen {
		return false
	}
	c.visited[id] = struct{}{}
	return true
}

func (c *classifier) leave(v reflect.Value) {
	if id, ok := identityOf(v); ok {
		delete(c.visited, id)
	}
}

var (
	goStringerType = reflect.TypeFor[fmt.GoStringer]()
	errorType      = reflect.TypeFor[error]()
	stringerType   = reflect.TypeFor[fmt.Stringer]()
)

// displayHook returns the text of a user-defined display method, trying
// GoString, Error and String in that order. Types from libraries with a
// structural category are exempt, since their methods are not overrides.
func displayHook(v reflect.Value) (string, bool) {
	if !v.CanInterface() || exempt(v.Type()) {
		return "", false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return "", false
	}
	t := v.Type()
	switch {
	case t.Implements(goStringerType):
		return v.Interface().(fmt.GoStringer).GoString(), true
	case t.Implements(errorType):
		return v.Interface().(error).Error(), true
	case t.Implements(stringerType):
		return v.Interface().(fmt.Stringer).String(), true
	}
	return "", false
}
