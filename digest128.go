package murmur3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1x86 uint32 = 0x239b961b
	c2x86 uint32 = 0xab0e9789
	c3x86 uint32 = 0x38b34ae5
	c4x86 uint32 = 0xa1e38b93
)

// sum128x86 is the MurmurHash3_x86_128 reference algorithm over a complete
// input. Four 32-bit accumulators with a cross-lane add per block; the tail
// cascade runs lane 4 down to lane 1, the reverse of the block order.
func sum128x86(data []byte, seed uint32) Digest128 {
	h1, h2, h3, h4 := seed, seed, seed, seed

	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		b := data[i*16:]
		k1 := binary.LittleEndian.Uint32(b)
		k2 := binary.LittleEndian.Uint32(b[4:])
		k3 := binary.LittleEndian.Uint32(b[8:])
		k4 := binary.LittleEndian.Uint32(b[12:])

		k1 *= c1x86
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2x86
		h1 ^= k1
		h1 = bits.RotateLeft32(h1, 19)
		h1 += h2
		h1 = h1*5 + 0x561ccd1b

		k2 *= c2x86
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3x86
		h2 ^= k2
		h2 = bits.RotateLeft32(h2, 17)
		h2 += h3
		h2 = h2*5 + 0x0bcaa747

		k3 *= c3x86
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4x86
		h3 ^= k3
		h3 = bits.RotateLeft32(h3, 15)
		h3 += h4
		h3 = h3*5 + 0x96cd1c35

		k4 *= c4x86
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1x86
		h4 ^= k4
		h4 = bits.RotateLeft32(h4, 13)
		h4 += h1
		h4 = h4*5 + 0x32ac3b17
	}

	tail := data[nblocks*16:]
	var k1, k2, k3, k4 uint32
	switch len(tail) {
	case 15:
		k4 ^= uint32(tail[14]) << 16
		fallthrough
	case 14:
		k4 ^= uint32(tail[13]) << 8
		fallthrough
	case 13:
		k4 ^= uint32(tail[12])
		k4 *= c4x86
		k4 = bits.RotateLeft32(k4, 18)
		k4 *= c1x86
		h4 ^= k4
		fallthrough
	case 12:
		k3 ^= uint32(tail[11]) << 24
		fallthrough
	case 11:
		k3 ^= uint32(tail[10]) << 16
		fallthrough
	case 10:
		k3 ^= uint32(tail[9]) << 8
		fallthrough
	case 9:
		k3 ^= uint32(tail[8])
		k3 *= c3x86
		k3 = bits.RotateLeft32(k3, 17)
		k3 *= c4x86
		h3 ^= k3
		fallthrough
	case 8:
		k2 ^= uint32(tail[7]) << 24
		fallthrough
	case 7:
		k2 ^= uint32(tail[6]) << 16
		fallthrough
	case 6:
		k2 ^= uint32(tail[5]) << 8
		fallthrough
	case 5:
		k2 ^= uint32(tail[4])
		k2 *= c2x86
		k2 = bits.RotateLeft32(k2, 16)
		k2 *= c3x86
		h2 ^= k2
		fallthrough
	case 4:
		k1 ^= uint32(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		k1 *= c1x86
		k1 = bits.RotateLeft32(k1, 15)
		k1 *= c2x86
		h1 ^= k1
	}

	n := uint32(len(data))
	h1 ^= n
	h2 ^= n
	h3 ^= n
	h4 ^= n

	// The second combine reads the h1 updated by the first.
	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	h1 = fmix32(h1)
	h2 = fmix32(h2)
	h3 = fmix32(h3)
	h4 = fmix32(h4)

	h1 += h2 + h3 + h4
	h2 += h1
	h3 += h1
	h4 += h1

	var d Digest128
	binary.BigEndian.PutUint32(d[0:], h1)
	binary.BigEndian.PutUint32(d[4:], h2)
	binary.BigEndian.PutUint32(d[8:], h3)
	binary.BigEndian.PutUint32(d[12:], h4)

	return d
}
