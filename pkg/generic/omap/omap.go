package omap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/scottcagno/ordered"
)

var (
	// ErrOddPairList is returned when a flat key value pair
	// list has a trailing key with no matching value
	ErrOddPairList = errors.New("omap: odd length key value pair list")

	// ErrKeyType and ErrValueType are returned when an element
	// of a flat pair list has the wrong dynamic type
	ErrKeyType   = errors.New("omap: pair list key has wrong type")
	ErrValueType = errors.New("omap: pair list value has wrong type")
)

// Entry is a single key value pair in the map
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that preserves insertion order. It keeps a
// lookup table for O(1) access next to an order sequence of keys
// that drives iteration. Both structures are kept in sync by every
// mutating call: the key set of data always equals the set of keys,
// and keys never holds a duplicate. It is not safe for concurrent
// use; wrap it externally if that is needed.
type OrderedMap[K comparable, V any] struct {
	data map[K]V
	keys []K
}

var _ ordered.Map[string, int] = (*OrderedMap[string, int])(nil)

// New returns a new empty OrderedMap
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V),
		keys: make([]K, 0),
	}
}

// NewWithCapacity returns a new empty OrderedMap with room
// preallocated for capacity entries
func NewWithCapacity[K comparable, V any](capacity int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V, capacity),
		keys: make([]K, 0, capacity),
	}
}

// FromPairs builds an OrderedMap from a flat alternating key value
// list. A duplicate key keeps the position of its first occurrence
// and the value of its last. The list must have even length and
// every element must assert to K or V respectively, otherwise an
// error is returned and no map is produced.
func FromPairs[K comparable, V any](pairs ...any) (*OrderedMap[K, V], error) {
	entries, err := castPairs[K, V](pairs)
	if err != nil {
		return nil, err
	}
	return FromEntries(entries...), nil
}

// FromEntries builds an OrderedMap from entries, the typed partner
// of FromPairs. A duplicate key keeps the position of its first
// occurrence and the value of its last.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := NewWithCapacity[K, V](len(entries))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// castPairs validates a flat pair list up front and materializes it,
// so bulk calls either apply fully or leave the map untouched
func castPairs[K comparable, V any](pairs []any) ([]Entry[K, V], error) {
	if len(pairs)%2 != 0 {
		return nil, ErrOddPairList
	}
	entries := make([]Entry[K, V], 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(K)
		if !ok {
			return nil, fmt.Errorf("%w: pair %d holds %T", ErrKeyType, i/2, pairs[i])
		}
		val, ok := pairs[i+1].(V)
		if !ok {
			return nil, fmt.Errorf("%w: pair %d holds %T", ErrValueType, i/2, pairs[i+1])
		}
		entries = append(entries, Entry[K, V]{Key: key, Value: val})
	}
	return entries, nil
}

// Len returns the current number of entries
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty reports whether the map holds no entries
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Has reports whether key is present, it never mutates the map
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.data[key]
	return ok
}

// Get returns the value for the given key (if it exists)
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	val, ok := m.data[key]
	return val, ok
}

// Set stores value under key and returns the value just stored. A
// new key is appended to the end of the order; an existing key is
// updated in place and keeps its position (unlike Push, which moves
// an existing key to the end).
func (m *OrderedMap[K, V]) Set(key K, value V) V {
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
	return value
}

// Del removes the value for the given key (if it exists) and returns
// it. Locating the key in the order sequence is a linear scan, so
// callers must not assume sub-linear delete cost.
func (m *OrderedMap[K, V]) Del(key K) (V, bool) {
	val, ok := m.data[key]
	if !ok {
		return *new(V), false
	}
	delete(m.data, key)
	m.dropKey(key)
	return val, true
}

// dropKey removes key from the order sequence, O(n) scan
func (m *OrderedMap[K, V]) dropKey(key K) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}

// Push appends pairs to the end of the order, left to right. An
// existing key is moved from its old position to the end (same O(n)
// scan as Del) and its value replaced. Returns the resulting entry
// count. A malformed pair list returns an error and leaves the map
// untouched.
func (m *OrderedMap[K, V]) Push(pairs ...any) (int, error) {
	entries, err := castPairs[K, V](pairs)
	if err != nil {
		return len(m.keys), err
	}
	for _, e := range entries {
		if _, ok := m.data[e.Key]; ok {
			m.dropKey(e.Key)
		}
		m.keys = append(m.keys, e.Key)
		m.data[e.Key] = e.Value
	}
	return len(m.keys), nil
}

// Unshift prepends pairs to the front of the order. The list is
// consumed right to left so the pairs end up at the front in their
// original left to right order. An existing key is moved from its
// old position to the front. Returns the resulting entry count. A
// malformed pair list returns an error and leaves the map untouched.
func (m *OrderedMap[K, V]) Unshift(pairs ...any) (int, error) {
	entries, err := castPairs[K, V](pairs)
	if err != nil {
		return len(m.keys), err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if _, ok := m.data[e.Key]; ok {
			m.dropKey(e.Key)
		}
		m.keys = append([]K{e.Key}, m.keys...)
		m.data[e.Key] = e.Value
	}
	return len(m.keys), nil
}

// Pop removes and returns the last entry in the order, or false on
// an empty map
func (m *OrderedMap[K, V]) Pop() (K, V, bool) {
	if len(m.keys) == 0 {
		return *new(K), *new(V), false
	}
	key := m.keys[len(m.keys)-1]
	m.keys = m.keys[:len(m.keys)-1]
	val := m.data[key]
	delete(m.data, key)
	return key, val, true
}

// Shift removes and returns the first entry in the order, or false
// on an empty map
func (m *OrderedMap[K, V]) Shift() (K, V, bool) {
	if len(m.keys) == 0 {
		return *new(K), *new(V), false
	}
	key := m.keys[0]
	m.keys = m.keys[1:]
	val := m.data[key]
	delete(m.data, key)
	return key, val, true
}

// Merge applies Set semantics to each pair in turn: existing keys
// keep their position, new keys append. Returns the resulting entry
// count. A malformed pair list returns an error and leaves the map
// untouched.
func (m *OrderedMap[K, V]) Merge(pairs ...any) (int, error) {
	entries, err := castPairs[K, V](pairs)
	if err != nil {
		return len(m.keys), err
	}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return len(m.keys), nil
}

// Clear drops every entry, the map stays usable
func (m *OrderedMap[K, V]) Clear() {
	m.data = make(map[K]V)
	m.keys = make([]K, 0)
}

// Keys returns the keys in order. The returned slice is a snapshot
// and never aliases the internal order sequence.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in key order, looked up at call time
func (m *OrderedMap[K, V]) Values() []V {
	vals := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		vals = append(vals, m.data[k])
	}
	return vals
}

// Entries returns a snapshot of all entries in current order
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry[K, V]{Key: k, Value: m.data[k]})
	}
	return entries
}

// Clone returns an independently mutable copy. The lookup table and
// order sequence are fresh; the values themselves are copied by
// assignment, so reference values share their referents.
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := &OrderedMap[K, V]{
		data: make(map[K]V, len(m.data)),
		keys: make([]K, len(m.keys)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.data {
		c.data[k] = v
	}
	return c
}

// Range iterates over all entries in order until iter returns false.
// It reads the map live, so the map must not be mutated during the
// walk; use Iter for a cursor that tolerates mutation.
func (m *OrderedMap[K, V]) Range(iter func(key K, value V) bool) {
	for _, k := range m.keys {
		if !iter(k, m.data[k]) {
			return
		}
	}
}

func (m *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("omap[")
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", k, m.data[k])
	}
	sb.WriteByte(']')
	return sb.String()
}
