// Package pretty formats arbitrary Go values as width-aware, optionally
// highlighted text.
//
// Format walks a value with reflection and builds a tree of nodes, then
// renders the tree top-down against a width budget. A container is printed
// on one line when it fits and with one element per line otherwise:
//
//	[]any{"a", 10, nil, 5.0}    width 19: ["a", 10, nil, 5.0]
//	                            width 18: [
//	                                          "a",
//	                                          10,
//	                                          nil,
//	                                          5.0,
//	                                      ]
//
// # Categories
//
// Values are matched against an ordered list of categories; the first match
// decides the layout:
//
//   - slices print as [a, b], named slice types as Name([a, b])
//   - map[K]struct{} prints as a set {a, b}, *bitset.BitSet as BitSet({1, 2})
//   - arrays print as tuples (a, b), a single element as (a,)
//   - collections.Counter prints as Counter({k: n}), most common first
//   - collections.DefaultMap prints as DefaultMap(func() V, {k: v})
//   - *orderedmap.OrderedMap prints as {k: v} in insertion order
//   - other maps print as {k: v} with sorted keys
//   - iter.Seq and iter.Seq2 print as Seq([a, b]) and Seq2([(k, v)])
//   - types implementing Sequence or Mapping print as Name([...]) or Name({...})
//   - *list.List prints as List([a, b])
//   - go/ast nodes print as BinaryExpr(X=..., Op=+, Y=...)
//   - collections.ChainMap prints as ChainMap({...}, {...})
//   - structs print as Name(Field=value)
//   - pointers print as & followed by their target
//
// A value with its own GoString, Error or String method is printed with that
// method instead. Everything else prints as Go syntax.
//
// Empty containers never break: an empty named type prints as Name() and an
// empty set as set().
//
// # Cycles
//
// Values reachable from themselves are expanded once; the inner occurrence
// prints as an ellipsis inside the brackets of its category:
//
//	xs := []any{nil}
//	xs[0] = xs
//	pretty.MustFormat(xs) // [[...]]
package pretty
