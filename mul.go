package fpconv

import "github.com/shogo82148/int128"

// mul64Limbs returns the 128-bit product of a and b.
// It splits both operands into four 16-bit limbs and sums the partial products
// column by column, so it needs nothing wider than a 64-bit multiply.
func mul64Limbs(a, b uint64) int128.Uint128 {
	var x, y [4]uint64
	for i := 0; i < 4; i++ {
		x[i] = (a >> (16 * i)) & 0xffff
		y[i] = (b >> (16 * i)) & 0xffff
	}

	// each partial product is less than 2^32 and a column has at most four of them.
	var col [8]uint64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			col[i+j] += x[i] * y[j]
		}
	}

	var carry uint64
	for i := range col {
		col[i] += carry
		carry = col[i] >> 16
		col[i] &= 0xffff
	}

	return int128.Uint128{
		H: col[4] | col[5]<<16 | col[6]<<32 | col[7]<<48,
		L: col[0] | col[1]<<16 | col[2]<<32 | col[3]<<48,
	}
}

// mulShift returns the product of a and b and the product shifted right by n bits.
func mulShift(a, b uint64, n uint) (int128.Uint128, uint64) {
	p := mul64(a, b)
	return p, p.Rsh(n).L
}
