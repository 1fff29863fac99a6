package main

import (
	"fmt"
	"log"

	"github.com/scottcagno/ordered/pkg/generic/omap"
)

var pairs = []any{
	"daily-backup", "0 2 * * *",
	"log-rotate", "0 0 * * 0",
	"health-check", "*/5 * * * *",
	"cache-sweep", "30 3 * * *",
}

func main() {

	m, err := omap.FromPairs[string, string](pairs...)
	checkErr(err)
	fmt.Printf("built map: %s\n", m)

	// updating in place keeps the slot
	m.Set("log-rotate", "0 1 * * 0")
	fmt.Printf("after set: %v\n", m.Keys())

	// pushing an existing key moves it to the end
	n, err := m.Push("daily-backup", "0 4 * * *")
	checkErr(err)
	fmt.Printf("after push: %v (%d entries)\n", m.Keys(), n)

	// bump one to the front
	_, err = m.Unshift("health-check", "*/1 * * * *")
	checkErr(err)
	fmt.Printf("after unshift: %v\n", m.Keys())

	it := m.Iter()
	for it.Next() {
		v, ok := it.Value()
		fmt.Printf("entry: %s -> %s (present=%t)\n", it.Key(), v, ok)
	}

	for !m.IsEmpty() {
		k, v, _ := m.Pop()
		fmt.Printf("popped: %s (%s), %d left\n", k, v, m.Len())
	}
}

func checkErr(err error) {
	if err != nil {
		log.Panicf("got error: %v", err)
	}
}
