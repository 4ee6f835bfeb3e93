package fpconv_test

import (
	"fmt"
	"math"

	"github.com/shogo82148/fpconv"
)

func ExampleAnalyze64() {
	d := fpconv.Analyze64(math.Float64bits(0.1))
	fmt.Println(d.Mantissa, d.Exponent, d.Negative)
	fmt.Printf("%d\n", d)
	// Output:
	// 100000000000000000 -18 false
	// 1e-1
}

func ExampleSynthesize32() {
	b := fpconv.Synthesize32(340282350, 30, false)
	fmt.Println(math.Float32frombits(b))
	b = fpconv.Synthesize32(340282350, 31, false)
	fmt.Println(math.Float32frombits(b))
	// Output:
	// 3.4028235e+38
	// +Inf
}

func ExampleDecimal_Digits() {
	d := fpconv.FromFloat64(123456.789)
	fmt.Println(d)
	fmt.Println(d.Digits())
	// Output:
	// 123456789000000000e-12
	// 123456789 -3
}
