package collections

// ChainMap groups several maps into one view. Lookups search the maps in
// order; writes go to the first map.
type ChainMap[K comparable, V any] struct {
	maps []map[K]V
}

// NewChainMap returns a ChainMap over maps. With no maps it holds a single
// empty one.
func NewChainMap[K comparable, V any](maps ...map[K]V) *ChainMap[K, V] {
	if len(maps) == 0 {
		maps = []map[K]V{{}}
	}
	for i, m := range maps {
		if m == nil {
			maps[i] = map[K]V{}
		}
	}
	return &ChainMap[K, V]{maps: maps}
}

// Get returns the value for k from the first map that holds it.
func (c *ChainMap[K, V]) Get(k K) (V, bool) {
	for _, m := range c.maps {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Set stores v under k in the first map.
func (c *ChainMap[K, V]) Set(k K, v V) {
	c.maps[0][k] = v
}

// Len returns the number of distinct keys across all maps.
func (c *ChainMap[K, V]) Len() int {
	seen := make(map[K]struct{})
	for _, m := range c.maps {
		for k := range m {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}

// NewChild returns a ChainMap with a new empty map in front of the maps of c.
func (c *ChainMap[K, V]) NewChild() *ChainMap[K, V] {
	maps := make([]map[K]V, 0, len(c.maps)+1)
	maps = append(maps, map[K]V{})
	maps = append(maps, c.maps...)
	return &ChainMap[K, V]{maps: maps}
}

// Parents returns a ChainMap over every map of c but the first.
func (c *ChainMap[K, V]) Parents() *ChainMap[K, V] {
	return NewChainMap(append([]map[K]V(nil), c.maps[1:]...)...)
}

// Layers returns the maps in search order.
func (c *ChainMap[K, V]) Layers() []any {
	layers := make([]any, len(c.maps))
	for i, m := range c.maps {
		layers[i] = m
	}
	return layers
}

var _ Layered = (*ChainMap[string, int])(nil)
