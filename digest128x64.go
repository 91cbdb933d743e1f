package murmur3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1x64 uint64 = 0x87c37b91114253d5
	c2x64 uint64 = 0x4cf5ad432745937f
)

// sum128x64 is the MurmurHash3_x64_128 reference algorithm over a complete
// input. Two 64-bit accumulators; the tail cascade folds bytes 8..14 into
// k2 before bytes 0..7 into k1.
func sum128x64(data []byte, seed uint32) Digest128 {
	h1, h2 := uint64(seed), uint64(seed)

	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		b := data[i*16:]
		k1 := binary.LittleEndian.Uint64(b)
		k2 := binary.LittleEndian.Uint64(b[8:])

		k1 *= c1x64
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2x64
		h1 ^= k1
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2x64
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1x64
		h2 ^= k2
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	tail := data[nblocks*16:]
	var k1, k2 uint64
	switch len(tail) {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])
		k2 *= c2x64
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1x64
		h2 ^= k2
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		k1 *= c1x64
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2x64
		h1 ^= k1
	}

	n := uint64(len(data))
	h1 ^= n
	h2 ^= n

	h1 += h2
	h2 += h1

	h1 = fmix64(h1)
	h2 = fmix64(h2)

	h1 += h2
	h2 += h1

	var d Digest128
	binary.BigEndian.PutUint64(d[0:], h1)
	binary.BigEndian.PutUint64(d[8:], h2)

	return d
}

// fmix64 is the 64-bit avalanche finalizer.
func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33

	return h
}
