package fpconv

import (
	"math/bits"
)

const (
	signMask32 = 1 << 31
	shift32    = 23
	bias32     = 127
	mask32     = 0xff
	fracMask32 = 1<<shift32 - 1

	signMask64 = 1 << 63
	shift64    = 52
	bias64     = 1023
	mask64     = 0x7ff
	fracMask64 = 1<<shift64 - 1
)

// floatInfo describes one IEEE 754 binary format and the decimal
// precision the engine converts it to.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int

	// precision is the number of decimal digits of a normalized mantissa.
	precision int

	// maxAbsDecExp is the half width of the power-of-ten tables.
	maxAbsDecExp int

	// digitBudgetBits is the number of high bits of the 64-bit product
	// window that are left above the decimal mantissa.
	digitBudgetBits int

	tables func() *powTables
}

var float32info = floatInfo{
	mantbits:        shift32,
	expbits:         8,
	bias:            bias32,
	precision:       Precision32,
	maxAbsDecExp:    MaxAbsDecExp32,
	digitBudgetBits: 5,
}

var float64info = floatInfo{
	mantbits:        shift64,
	expbits:         11,
	bias:            bias64,
	precision:       Precision64,
	maxAbsDecExp:    MaxAbsDecExp64,
	digitBudgetBits: 6,
}

func init() {
	float32info.tables = newTables(&float32info)
	float64info.tables = newTables(&float64info)
}

// decompose splits the bit pattern b into its sign, significand and biased exponent.
// The hidden bit is made explicit, and subnormal numbers are normalized so that
// the significand always has mantbits+1 bits; errorShift is the number of bits
// the subnormal significand was shifted by.
// frac is zero if and only if b is a signed zero.
func (flt *floatInfo) decompose(b uint64) (neg bool, frac uint64, exp int, errorShift uint) {
	neg = b>>(flt.expbits+flt.mantbits) != 0
	exp = int(b>>flt.mantbits) & (1<<flt.expbits - 1)
	frac = b & (1<<flt.mantbits - 1)

	if exp == 0 {
		if frac == 0 {
			// ±0
			return
		}
		// subnormal number
		l := bits.Len64(frac)
		errorShift = flt.mantbits - uint(l) + 1
		frac <<= errorShift
		exp = 1 - int(errorShift)
	} else {
		// normal number
		frac |= 1 << flt.mantbits
	}
	return
}

// isPow2 reports whether the normalized significand frac with biased exponent exp
// is a power of two whose lower neighbor is half an ulp away.
func (flt *floatInfo) isPow2(frac uint64, exp int) bool {
	return frac == 1<<flt.mantbits && exp > 1
}

// maxExp returns the biased exponent of infinities and NaNs.
func (flt *floatInfo) maxExp() int {
	return 1<<flt.expbits - 1
}
