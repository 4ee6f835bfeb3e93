package fpconv

// xorshift32 is a fast pseudo random number generator for tests and benchmarks.
type xorshift32 struct {
	x uint32
}

func newXorshift32() *xorshift32 {
	return &xorshift32{x: 2463534242}
}

func (r *xorshift32) Uint32() uint32 {
	x := r.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.x = x
	return x
}

// Float32Bits returns the bit pattern of a random finite float32.
func (r *xorshift32) Float32Bits() uint32 {
	for {
		b := r.Uint32()
		if b&(mask32<<shift32) != mask32<<shift32 {
			return b
		}
	}
}

type xorshift64 struct {
	x uint64
}

func newXorshift64() *xorshift64 {
	return &xorshift64{x: 88172645463325252}
}

func (r *xorshift64) Uint64() uint64 {
	x := r.x
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.x = x
	return x
}

// Float64Bits returns the bit pattern of a random finite float64.
func (r *xorshift64) Float64Bits() uint64 {
	for {
		b := r.Uint64()
		if b&(mask64<<shift64) != mask64<<shift64 {
			return b
		}
	}
}

// Mantissa64 returns a random decimal mantissa with Precision64 digits.
func (r *xorshift64) Mantissa64() uint64 {
	return MaxPos64 + r.Uint64()%(9*MaxPos64)
}

// Mantissa32 returns a random decimal mantissa with Precision32 digits.
func (r *xorshift64) Mantissa32() uint32 {
	return uint32(MaxPos32 + r.Uint64()%(9*MaxPos32))
}
