package murmur3

import (
	"encoding/hex"
	"math/big"
)

// Digest128 is a 128-bit MurmurHash3 digest. The bytes hold the
// accumulator lanes in order, each serialized big-endian, so Hex and
// BigInt read the same left-to-right as the reference output.
//
// Digest128 is a comparable value type; two digests from the same variant
// can be compared with ==.
type Digest128 [16]byte

// Hex returns the digest as exactly 32 lowercase hex characters.
func (d Digest128) Hex() string {
	return hex.EncodeToString(d[:])
}

// BigInt returns the digest bit pattern as an unsigned big integer,
// equal to parsing Hex as base 16.
func (d Digest128) BigInt() *big.Int {
	return new(big.Int).SetBytes(d[:])
}

// Uint64s returns the digest as two unsigned 64-bit halves, high first.
// For the x64 variant these are the h1 and h2 accumulators.
func (d Digest128) Uint64s() (hi, lo uint64) {
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(d[i])
		lo = lo<<8 | uint64(d[i+8])
	}
	return hi, lo
}

// String implements fmt.Stringer and is equivalent to Hex.
func (d Digest128) String() string {
	return d.Hex()
}
