// Package fpconv converts IEEE 754 binary floating-point numbers to fixed-precision
// decimal numbers and back.
//
// Analyze32 and Analyze64 turn a bit pattern into a decimal mantissa of
// Precision32 or Precision64 digits and a decimal exponent. The mantissa is
// the roundest decimal (the one with the most trailing zeros) that converts
// back to the same bit pattern, so trimming trailing zeros yields a short
// representation. Synthesize32 and Synthesize64 are the inverse conversions.
//
// The package does no lexing or formatting; it works on
// (sign, mantissa, exponent) triples only.
package fpconv

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// Precision32 is the number of decimal digits of a float32 mantissa.
	Precision32 = 9

	// Precision64 is the number of decimal digits of a float64 mantissa.
	Precision64 = 18

	// MaxPos32 is the place value of the leading digit of a float32 mantissa.
	MaxPos32 = 100000000

	// MaxPos64 is the place value of the leading digit of a float64 mantissa.
	MaxPos64 = 100000000000000000

	// MaxAbsDecExp32 is the half width of the float32 power-of-ten tables.
	// The decimal exponent of the leading digit of a synthesized number
	// must be in (-MaxAbsDecExp32, MaxAbsDecExp32].
	MaxAbsDecExp32 = 50

	// MaxAbsDecExp64 is the half width of the float64 power-of-ten tables.
	// The decimal exponent of the leading digit of a synthesized number
	// must be in (-MaxAbsDecExp64, MaxAbsDecExp64].
	MaxAbsDecExp64 = 330
)

// Decimal is a decimal floating-point number.
// Its value is (-1)^Negative * Mantissa * 10^Exponent.
type Decimal[T constraints.Unsigned] struct {
	Mantissa T
	Exponent int32
	Negative bool
}

// Decimal32 is the decimal form of a float32.
// Mantissa is zero or has exactly Precision32 digits.
type Decimal32 = Decimal[uint32]

// Decimal64 is the decimal form of a float64.
// Mantissa is zero or has exactly Precision64 digits.
type Decimal64 = Decimal[uint64]

// IsZero reports whether d is ±0.
func (d Decimal[T]) IsZero() bool {
	return d.Mantissa == 0
}

// Digits returns the mantissa and exponent of d with trailing zeros removed.
// For zero it returns 0, 0.
func (d Decimal[T]) Digits() (digits T, exp int32) {
	digits, exp = d.Mantissa, d.Exponent
	if digits == 0 {
		return 0, 0
	}
	for digits%10 == 0 {
		digits /= 10
		exp++
	}
	return
}

// Analyze32 returns the decimal form of the float32 with the bit pattern b.
// b must not be an infinity or NaN.
func Analyze32(b uint32) Decimal32 {
	mant, exp, neg := float32info.analyze(uint64(b))
	return Decimal32{
		Mantissa: uint32(mant),
		Exponent: int32(exp),
		Negative: neg,
	}
}

// Analyze64 returns the decimal form of the float64 with the bit pattern b.
// b must not be an infinity or NaN.
func Analyze64(b uint64) Decimal64 {
	mant, exp, neg := float64info.analyze(b)
	return Decimal64{
		Mantissa: mant,
		Exponent: int32(exp),
		Negative: neg,
	}
}

// Synthesize32 returns the bit pattern of a float32 within one ulp of ±mantissa * 10^exponent.
// Exact ties may round away from even.
// mantissa should be zero or have Precision32 digits.
// Numbers too large for float32 become ±Inf and numbers too small become ±0.
// If the exponent is out of the range of the tables, the result is ±0.
func Synthesize32(mantissa uint32, exponent int32, negative bool) uint32 {
	return uint32(float32info.synthesize(uint64(mantissa), int(exponent), negative))
}

// Synthesize64 returns the bit pattern of a float64 within one ulp of ±mantissa * 10^exponent.
// Exact ties may round away from even.
// mantissa should be zero or have Precision64 digits.
// Numbers too large for float64 become ±Inf and numbers too small become ±0.
// If the exponent is out of the range of the tables, the result is ±0.
func Synthesize64(mantissa uint64, exponent int32, negative bool) uint64 {
	return float64info.synthesize(mantissa, int(exponent), negative)
}

// FromFloat32 returns the decimal form of f.
func FromFloat32(f float32) Decimal32 {
	return Analyze32(math.Float32bits(f))
}

// FromFloat64 returns the decimal form of f.
func FromFloat64(f float64) Decimal64 {
	return Analyze64(math.Float64bits(f))
}

// ToFloat32 returns a float32 within one ulp of d.
func ToFloat32(d Decimal32) float32 {
	return math.Float32frombits(Synthesize32(d.Mantissa, d.Exponent, d.Negative))
}

// ToFloat64 returns a float64 within one ulp of d.
func ToFloat64(d Decimal64) float64 {
	return math.Float64frombits(Synthesize64(d.Mantissa, d.Exponent, d.Negative))
}
