package omap_test

import (
	"fmt"

	"github.com/scottcagno/ordered/pkg/generic/omap"
)

func ExampleOrderedMap_Set() {
	m := omap.New[string, int]()
	m.Set("host", 1)
	m.Set("port", 2)
	m.Set("host", 10) // update keeps the position
	fmt.Println(m.Keys())
	fmt.Println(m.Values())
	// Output:
	// [host port]
	// [10 2]
}

func ExampleOrderedMap_Push() {
	m, _ := omap.FromPairs[string, int]("a", 1, "b", 2)
	m.Push("a", 10, "c", 3) // existing key moves to the end
	fmt.Println(m)
	// Output:
	// omap[b:2 a:10 c:3]
}

func ExampleOrderedMap_Iter() {
	m, _ := omap.FromPairs[string, string]("one", "uno", "two", "dos")
	it := m.Iter()
	for it.Next() {
		v, _ := it.Value()
		fmt.Printf("%s=%s\n", it.Key(), v)
	}
	// Output:
	// one=uno
	// two=dos
}
