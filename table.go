package fpconv

import (
	"slices"
	"sync"

	"github.com/shogo82148/int128"
)

// powTable is a table of approximated powers of ten.
// mant[i] and exp[i] describe the i-th entry; what they approximate
// depends on the direction the table is used for.
type powTable struct {
	mant []uint64
	exp  []int32
}

// powTables holds the tables of one floating-point format.
type powTables struct {
	// analysis[k+maxAbsDecExp] converts a binary number whose biased exponent is
	// at least exp to a decimal mantissa with the leading digit at 10^k.
	analysis powTable

	// synthesis[maxAbsDecExp-k] converts a decimal mantissa with the leading digit at 10^k
	// to a binary number.
	synthesis powTable
}

// pow10 is 10^n as a 128-bit normalized mantissa: 10^n ≈ mant * 2^exp.
type pow10 struct {
	mant int128.Uint128 // in [2^127, 2^128)
	exp  int
}

var uint64pow10 = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

func newTables(flt *floatInfo) func() *powTables {
	return sync.OnceValue(func() *powTables {
		return buildTables(flt)
	})
}

// walkPow10 returns 10^n for n in [-limit, limit], indexed by n+limit.
// It starts from 10^0 = 2^127 * 2^-127, which is exact, and walks in both directions
// multiplying or dividing by ten. The 128-bit mantissas are rounded at every step,
// so the accumulated error stays far below the 64 bits the tables keep.
func walkPow10(limit int) []pow10 {
	ten := int128.Uint128{L: 10}
	one := int128.Uint128{L: 1}
	ret := make([]pow10, 2*limit+1)
	ret[limit] = pow10{mant: int128.Uint128{H: 1 << 63}, exp: -127}

	// negative powers: divide by ten
	p := ret[limit]
	for n := 1; n <= limit; n++ {
		q, r := p.mant.DivMod(ten)
		shift := uint(q.LeadingZeros())

		// bring in the bits of the remainder.
		rem := r.L << shift
		q = q.Lsh(shift).Add(int128.Uint128{L: rem / 10})
		exp := p.exp - int(shift)
		if rem%10 >= 5 {
			q = q.Add(one)
			if q.H == 0 && q.L == 0 {
				// overflow
				q = int128.Uint128{H: 1 << 63}
				exp++
			}
		}
		p = pow10{mant: q, exp: exp}
		ret[limit-n] = p
	}

	// positive powers: multiply by ten
	p = ret[limit]
	for n := 1; n <= limit; n++ {
		// make room for the factor of ten.
		q := rshRound(p.mant, 4).Mul(ten)
		shift := uint(q.LeadingZeros())
		p = pow10{mant: q.Lsh(shift), exp: p.exp + 4 - int(shift)}
		ret[limit+n] = p
	}
	return ret
}

func buildTables(flt *floatInfo) *powTables {
	prec := flt.precision
	size := flt.maxAbsDecExp
	walk := walkPow10(size + prec)
	get := func(n int) pow10 {
		return walk[n+size+prec]
	}

	// R = 2^(exp-bias) / 10^k is in [1, 2), so R * 10^(prec-1) * 2^scale
	// is a 64-bit integer with at least 62 significant bits.
	scale := 64 - flt.digitBudgetBits - int(flt.mantbits)
	analysis := powTable{
		mant: make([]uint64, 2*size),
		exp:  make([]int32, 2*size),
	}
	for i := range analysis.mant {
		k := i - size

		// the smallest biased exponent e such that 2^(e-bias) >= 10^k.
		exp := flt.bias
		if k != 0 {
			exp += get(k).exp + 127 + 1
		}

		// 10^(prec-1-k) * 2^(exp-bias+scale)
		p := get(prec - 1 - k)
		shift := -(p.exp + exp - flt.bias + scale)
		analysis.mant[i] = rshRound(p.mant, uint(shift)).L
		analysis.exp[i] = int32(exp)
	}

	synthesis := powTable{
		mant: make([]uint64, 2*size),
		exp:  make([]int32, 2*size),
	}
	for i := range synthesis.mant {
		k := size - i
		p := get(k - (prec - 1))
		mant := rshRound(p.mant, 64)
		exp := p.exp + 64
		if mant.H != 0 {
			// rounding overflowed to 2^64
			mant = mant.Rsh(1)
			exp++
		}
		synthesis.mant[i] = mant.L
		synthesis.exp[i] = int32(exp)
	}

	return &powTables{
		analysis:  analysis,
		synthesis: synthesis,
	}
}

// locate returns the index of the entry of the analysis table for the biased exponent exp.
func (t *powTable) locate(exp int) int {
	i, found := slices.BinarySearch(t.exp, int32(exp))
	if !found {
		i--
	}
	return i
}
