// Package collections provides container types with dedicated layouts in
// the pretty printer: a counting multiset, a map with a default factory and
// a stack of layered maps.
//
// The printer recognizes these through the Multiset, Defaulted and Layered
// interfaces, so other types can opt into the same layouts.
package collections

// Count is one element of a multiset with its multiplicity.
type Count struct {
	Key any
	N   int
}

// Multiset is implemented by counting containers. Counts returns the
// elements most common first.
type Multiset interface {
	Counts() []Count
}

// Defaulted is implemented by maps that create missing values on lookup.
type Defaulted interface {
	// DefaultFactory returns the function that creates missing values.
	DefaultFactory() any
	// Underlying returns the map holding the entries.
	Underlying() any
}

// Layered is implemented by maps made of several maps searched in order.
type Layered interface {
	Layers() []any
}
