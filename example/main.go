package main

import (
	"fmt"

	"github.com/aglyzov/go-radix"
)

func main() {
	t := radix.NewStringTrie[int]()
	t.Put("java.lang.Integer", 1)
	t.Put("java.lang.Long", 2)
	t.Put("java.lang.Boolean", 3)
	t.Put("java.io.InputStream", 4)
	t.Put("java.util.ArrayList", 5)
	t.Put("java.util.concurrent.ConcurrentHashMap", 6)

	t.DebugDump()

	fmt.Printf("G(java.lang.Long)  -> %v\n", t.Get("java.lang.Long", radix.Exact))
	fmt.Printf("H(java.io)         -> %v\n", t.Has("java.io", radix.StartsWith))
	fmt.Printf("G(java.lang.Float) -> %v\n", t.Get("java.lang.Float", radix.Partial))

	println("------")

	for key, val := range t.SubEntrySet("java.lang", radix.StartsWith).All() {
		fmt.Printf("%s = %v\n", key, val)
	}

	println("------")

	t.Remove("java.lang.Boolean")
	for key := range t.KeySet().All() {
		fmt.Printf("%s\n", key)
	}
}
