package murmur3

// buffered accumulates written bytes until a sum is requested. The sum
// methods run the one-shot engine over the whole buffer, so streaming is
// byte-identical to hashing the concatenation in one call.
type buffered struct {
	buf  []byte
	seed uint32
}

// Write appends p to the pending input. It never fails.
func (b *buffered) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// Reset discards all buffered input, keeping the configured seed.
func (b *buffered) Reset() {
	b.buf = b.buf[:0]
}

// Hash32 is a streaming wrapper around the 32-bit engine. It satisfies
// hash.Hash32. The zero value is not usable; construct with New32.
//
// A Hash32 buffers everything written to it (see the package docs for the
// streaming model) and is not safe for concurrent use.
type Hash32 struct {
	buffered
}

// New32 returns a streaming 32-bit MurmurHash3 wrapper.
func New32(opts ...Option) *Hash32 {
	o := applyOptions(opts)
	return &Hash32{buffered{seed: o.seed}}
}

// Size returns the digest size in bytes.
func (h *Hash32) Size() int { return 4 }

// BlockSize returns the engine block size in bytes.
func (h *Hash32) BlockSize() int { return 4 }

// Sum32 returns the digest of all bytes written so far. It does not
// consume the buffer; further writes extend the same input.
func (h *Hash32) Sum32() uint32 {
	return sum32(h.buf, h.seed)
}

// Sum appends the big-endian digest of all bytes written so far to in.
func (h *Hash32) Sum(in []byte) []byte {
	s := h.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Hash128 is a streaming wrapper around the 128-bit x86-layout engine.
// It satisfies hash.Hash. The zero value is not usable; construct with
// New128.
//
// A Hash128 buffers everything written to it and is not safe for
// concurrent use.
type Hash128 struct {
	buffered
}

// New128 returns a streaming 128-bit x86-layout MurmurHash3 wrapper.
func New128(opts ...Option) *Hash128 {
	o := applyOptions(opts)
	return &Hash128{buffered{seed: o.seed}}
}

// Size returns the digest size in bytes.
func (h *Hash128) Size() int { return 16 }

// BlockSize returns the engine block size in bytes.
func (h *Hash128) BlockSize() int { return 16 }

// Sum128 returns the digest of all bytes written so far. It does not
// consume the buffer; further writes extend the same input.
func (h *Hash128) Sum128() Digest128 {
	return sum128x86(h.buf, h.seed)
}

// Sum appends the digest of all bytes written so far to in.
func (h *Hash128) Sum(in []byte) []byte {
	d := h.Sum128()
	return append(in, d[:]...)
}

// Hash128x64 is a streaming wrapper around the 128-bit x64-layout engine.
// It satisfies hash.Hash. The zero value is not usable; construct with
// New128x64.
//
// A Hash128x64 buffers everything written to it and is not safe for
// concurrent use.
type Hash128x64 struct {
	buffered
}

// New128x64 returns a streaming 128-bit x64-layout MurmurHash3 wrapper.
func New128x64(opts ...Option) *Hash128x64 {
	o := applyOptions(opts)
	return &Hash128x64{buffered{seed: o.seed}}
}

// Size returns the digest size in bytes.
func (h *Hash128x64) Size() int { return 16 }

// BlockSize returns the engine block size in bytes.
func (h *Hash128x64) BlockSize() int { return 16 }

// Sum128 returns the digest of all bytes written so far. It does not
// consume the buffer; further writes extend the same input.
func (h *Hash128x64) Sum128() Digest128 {
	return sum128x64(h.buf, h.seed)
}

// Sum appends the digest of all bytes written so far to in.
func (h *Hash128x64) Sum(in []byte) []byte {
	d := h.Sum128()
	return append(in, d[:]...)
}
