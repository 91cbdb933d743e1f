package murmur3_test

import (
	"fmt"

	"github.com/hupe1980/murmur3"
)

// ExampleSum32 demonstrates one-shot 32-bit hashing.
func ExampleSum32() {
	fmt.Println(murmur3.Sum32([]byte("hello, world")))
	// Output: 345750399
}

// ExampleSum128x64 demonstrates the 128-bit x64-layout digest and its
// two representations.
func ExampleSum128x64() {
	d := murmur3.Sum128x64([]byte("0123456789abcdef"))

	fmt.Println(d.Hex())
	fmt.Println(d.BigInt())
	// Output:
	// 4be06d94cf4ad1a787c35b5c63a708da
	// 100857396752749189608428389911914547418
}

// ExampleNew128 demonstrates streaming input over multiple writes.
func ExampleNew128() {
	h := murmur3.New128()
	h.Write([]byte("0123456789"))
	h.Write([]byte("abcdef"))

	fmt.Println(h.Sum128().Hex())
	// Output: fb7d440936aed30a48ad1d9b572b3bfd
}

// ExampleWithSeed demonstrates seeded hashing.
func ExampleWithSeed() {
	h := murmur3.New32(murmur3.WithSeed(1))
	fmt.Println(h.Sum32())
	// Output: 1364076727
}
