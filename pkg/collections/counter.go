package collections

import (
	"reflect"
	"sort"

	"github.com/George-Ogden/dbg/internal/valueorder"
)

// Counter counts occurrences of keys.
type Counter[K comparable] map[K]int

// NewCounter returns a Counter holding the occurrences of keys.
func NewCounter[K comparable](keys ...K) Counter[K] {
	c := make(Counter[K], len(keys))
	c.Update(keys...)
	return c
}

// Add increments the count of k by n.
func (c Counter[K]) Add(k K, n int) {
	c[k] += n
}

// Update increments the count of each key by one.
func (c Counter[K]) Update(keys ...K) {
	for _, k := range keys {
		c[k]++
	}
}

// Total returns the sum of all counts.
func (c Counter[K]) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// MostCommon returns the n most common keys, or all of them if n is
// negative. Keys with equal counts are in ascending key order.
func (c Counter[K]) MostCommon(n int) []K {
	counts := c.Counts()
	if n >= 0 && n < len(counts) {
		counts = counts[:n]
	}
	keys := make([]K, len(counts))
	for i, count := range counts {
		keys[i] = count.Key.(K)
	}
	return keys
}

// Counts returns every key with its count, most common first.
func (c Counter[K]) Counts() []Count {
	counts := make([]Count, 0, len(c))
	for k, n := range c {
		counts = append(counts, Count{Key: k, N: n})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return valueorder.Compare(reflect.ValueOf(counts[i].Key), reflect.ValueOf(counts[j].Key)) < 0
	})
	return counts
}

var _ Multiset = Counter[string](nil)
