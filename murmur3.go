package murmur3

// Sum32 returns the 32-bit MurmurHash3 digest of data with seed 0.
func Sum32(data []byte) uint32 {
	return sum32(data, 0)
}

// Sum32WithSeed returns the 32-bit MurmurHash3 digest of data.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	return sum32(data, seed)
}

// Sum128 returns the 128-bit MurmurHash3 digest of data in the x86 lane
// layout (four 32-bit accumulators) with seed 0.
func Sum128(data []byte) Digest128 {
	return sum128x86(data, 0)
}

// Sum128WithSeed returns the 128-bit x86-layout MurmurHash3 digest of data.
func Sum128WithSeed(data []byte, seed uint32) Digest128 {
	return sum128x86(data, seed)
}

// Sum128x64 returns the 128-bit MurmurHash3 digest of data in the x64 lane
// layout (two 64-bit accumulators) with seed 0.
func Sum128x64(data []byte) Digest128 {
	return sum128x64(data, 0)
}

// Sum128x64WithSeed returns the 128-bit x64-layout MurmurHash3 digest of data.
func Sum128x64WithSeed(data []byte, seed uint32) Digest128 {
	return sum128x64(data, seed)
}
