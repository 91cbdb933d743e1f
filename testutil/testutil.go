package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	r.rand.Read(b) // never fails per math/rand contract
	return b
}

// Chunks splits data into consecutive pseudo-random chunks of at most
// maxChunk bytes. The concatenation of the result equals data. Empty
// chunks are produced occasionally so callers exercise zero-length
// writes too.
func (r *RNG) Chunks(data []byte, maxChunk int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if maxChunk < 1 {
		maxChunk = 1
	}

	var chunks [][]byte
	for off := 0; off < len(data); {
		n := r.rand.Intn(maxChunk + 1)
		if off+n > len(data) {
			n = len(data) - off
		}
		chunks = append(chunks, data[off:off+n])
		off += n
	}
	return chunks
}
