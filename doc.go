// Package murmur3 implements the MurmurHash3 family of non-cryptographic
// hash functions: the 32-bit variant and both 128-bit variants (x86 and
// x64 lane layouts). All three match the reference algorithm bit for bit
// on every input length and seed.
//
// # Quick Start
//
// One-shot hashing:
//
//	h := murmur3.Sum32([]byte("hello, world"))
//	d := murmur3.Sum128x64([]byte("hello, world"))
//	fmt.Println(d.Hex())    // 32 lowercase hex characters
//	fmt.Println(d.BigInt()) // same bits as an unsigned big integer
//
// Seeded hashing:
//
//	h := murmur3.Sum32WithSeed(data, 42)
//	d := murmur3.Sum128WithSeed(data, 42) // x86 lane layout
//
// Streaming over multiple writes:
//
//	w := murmur3.New128x64()
//	w.Write(chunk1)
//	w.Write(chunk2)
//	d := w.Sum128()
//
// # Variants
//
// The two 128-bit variants are distinct algorithms and produce unrelated
// digests for the same input: Sum128 uses the x86 layout (four 32-bit
// accumulators), Sum128x64 the x64 layout (two 64-bit accumulators).
// Digests are only comparable within a variant.
//
// # Streaming Model
//
// The streaming wrappers buffer all written bytes and hash once when a sum
// is requested, so a stream over chunks c1..cn yields exactly the digest of
// their concatenation. This trades memory linear in the input for exact
// one-shot equivalence; it is not constant-memory incremental hashing.
//
// # Properties
//
//   - Deterministic: identical (input, seed) always yields the same digest.
//   - Not cryptographic: no collision or preimage resistance is claimed.
//   - Byte layout is fixed little-endian regardless of host order.
//   - A wrapper instance is not safe for concurrent use; distinct
//     computations share no state and need no locking.
package murmur3
