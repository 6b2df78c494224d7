package pretty

// Sequence is implemented by container types that want to be printed as a
// list of items, Name([a, b]), without exposing their internals.
type Sequence interface {
	PrettyItems() []any
}

// Mapping is implemented by container types that want to be printed as a
// mapping, Name({k: v}). Entries are printed in the order returned.
type Mapping interface {
	PrettyEntries() []Entry
}

// Entry is one key/value association of a Mapping.
type Entry struct {
	Key   any
	Value any
}
