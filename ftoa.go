// convert binary floating point to decimal

package fpconv

import (
	"github.com/shogo82148/int128"
)

// analyze converts the bit pattern b to a decimal mantissa with flt.precision digits
// and the decimal exponent of its last digit.
// The mantissa is the roundest decimal that is guaranteed to convert back to b.
func (flt *floatInfo) analyze(b uint64) (mant uint64, exp int, neg bool) {
	neg, frac, e, errorShift := flt.decompose(b)
	if frac == 0 {
		return 0, 0, neg
	}

	tab := &flt.tables().analysis
	prec := flt.precision
	i := tab.locate(e)

	// the product has the decimal mantissa above bit shift.
	shift := flt.productShift(e, tab.exp[i])
	p, dec := mulShift(frac, tab.mant[i], shift)
	if dec >= uint64pow10[prec] {
		// b is at least 10^(k+1); use the next bucket.
		i++
		shift = flt.productShift(e, tab.exp[i])
		p, dec = mulShift(frac, tab.mant[i], shift)
	}

	// every number in (b - ulp/2, b + ulp/2) converts back to b.
	ulp := int128.Uint128{L: tab.mant[i]}.Lsh(errorShift)
	upError := ulp.Rsh(1)
	downError := upError
	if flt.isPow2(frac, e) {
		// the previous floating point number is closer.
		downError = ulp.Rsh(2)
	}

	// margin absorbs the table error of the analysis and synthesis.
	margin := p.Rsh(62).Add(int128.Uint128{L: 1})
	lower := rshCeil(p.Sub(downError).Add(margin), shift).L
	upper := p.Add(upError).Sub(margin).Rsh(shift).L
	if lower > dec {
		dec = lower
	}

	dec = roundDecimal(dec, dec-lower, upper-dec)

	k := i - flt.maxAbsDecExp
	if dec >= uint64pow10[prec] {
		dec /= 10
		k++
	} else if dec < uint64pow10[prec-1] {
		dec *= 10
		k--
	}
	return dec, k - (prec - 1), neg
}

// productShift returns the number of fractional bits of the product of a significand
// with the biased exponent exp and an analysis table entry with the binary exponent tabExp.
func (flt *floatInfo) productShift(exp int, tabExp int32) uint {
	mantissaShift := flt.digitBudgetBits + (exp - int(tabExp))
	return uint(64 - mantissaShift)
}

// roundDecimal returns the roundest number in [dec-downError, dec+upError].
// If both directions are equally round, it rounds dec to the nearest one.
func roundDecimal(dec, downError, upError uint64) uint64 {
	lowerPos := lowerDistance(dec, downError)
	upperPos := upperDistance(dec, upError)
	switch {
	case lowerPos > upperPos:
		return dec / lowerPos * lowerPos
	case lowerPos < upperPos:
		return dec/upperPos*upperPos + upperPos
	default:
		return (dec + upperPos/2) / upperPos * upperPos
	}
}

// lowerDistance returns the largest power of ten p such that
// rounding dec down to a multiple of p moves it by at most err.
func lowerDistance(dec, err uint64) uint64 {
	pos := uint64(1)
	for _, p := range uint64pow10[1:] {
		if dec%p > err {
			break
		}
		pos = p
	}
	return pos
}

// upperDistance returns the largest power of ten p such that
// rounding dec up to a multiple of p moves it by at most err.
func upperDistance(dec, err uint64) uint64 {
	pos := uint64(1)
	for _, p := range uint64pow10[1:] {
		if r := dec % p; r != 0 && p-r > err {
			break
		}
		pos = p
	}
	return pos
}
