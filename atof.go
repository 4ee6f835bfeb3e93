// convert decimal to binary floating point

package fpconv

// synthesize converts mant * 10^exp to the nearest floating-point number
// and returns its bit pattern.
func (flt *floatInfo) synthesize(mant uint64, exp int, neg bool) uint64 {
	var sign uint64
	if neg {
		sign = 1 << (flt.expbits + flt.mantbits)
	}

	tab := &flt.tables().synthesis
	i := flt.maxAbsDecExp - (exp + flt.precision - 1)
	if mant == 0 || i < 0 || i >= len(tab.mant) {
		// ±0
		return sign
	}

	// mant * 10^exp ≈ p * 2^tab.exp[i]
	p := mul64(mant, tab.mant[i])
	l := p.Len()
	e := l - 1 + int(tab.exp[i]) + flt.bias
	shift := l - int(flt.mantbits) - 1

	if e <= 0 {
		// the result is subnormal
		shift += 1 - e
		frac := rshRound(p, uint(shift)).L
		return sign | frac
	}

	frac := rshRound(p, uint(shift)).L
	if frac == 2<<flt.mantbits {
		// rounding added a bit
		frac >>= 1
		e++
	}
	if e >= flt.maxExp() {
		// overflow
		return sign | uint64(flt.maxExp())<<flt.mantbits
	}
	return sign | uint64(e)<<flt.mantbits | frac&(1<<flt.mantbits-1)
}
