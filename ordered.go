package ordered

// Map is an interface for the ordered containers in this package
type Map[K comparable, V any] interface {
	Has(key K) bool
	Get(key K) (V, bool)
	Set(key K, value V) V
	Del(key K) (V, bool)
	Keys() []K
	Values() []V
	Len() int
	IsEmpty() bool
}
