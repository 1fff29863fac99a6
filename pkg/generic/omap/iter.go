package omap

// Iterator is a stateful cursor over the entries of an OrderedMap.
// It captures a snapshot of the key order at creation time, so keys
// added to the map afterward are never visited. Values are looked up
// live at each step: a captured key that has since been deleted is
// still visited, with Value reporting false for it. The cursor holds
// a plain pointer to the map; it does not keep the map alive beyond
// the caller's own use.
type Iterator[K comparable, V any] struct {
	src  *OrderedMap[K, V]
	keys []K
	next int
}

// Iter returns a cursor positioned before the first entry
func (m *OrderedMap[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{
		src:  m,
		keys: m.Keys(),
	}
}

// Next advances the cursor and reports whether an entry is there.
// It must be called before the first Key or Value.
func (it *Iterator[K, V]) Next() bool {
	if it.next >= len(it.keys) {
		return false
	}
	it.next++
	return true
}

// Key returns the key at the cursor
func (it *Iterator[K, V]) Key() K {
	return it.keys[it.next-1]
}

// Value returns the value at the cursor, looked up in the live map.
// It reports false if the key was deleted after the cursor was made.
func (it *Iterator[K, V]) Value() (V, bool) {
	return it.src.Get(it.keys[it.next-1])
}

// Entry returns the key and value at the cursor together
func (it *Iterator[K, V]) Entry() (K, V, bool) {
	val, ok := it.Value()
	return it.Key(), val, ok
}
