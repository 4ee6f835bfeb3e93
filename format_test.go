package fpconv

import (
	"fmt"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		s    fmt.Stringer
		want string
	}{
		{Decimal64{}, "0e+0"},
		{Decimal64{Negative: true}, "-0e+0"},
		{Decimal64{Mantissa: 230000000000000000, Exponent: -16}, "230000000000000000e-16"},
		{Decimal64{Mantissa: 123456789000000000, Exponent: 133}, "123456789000000000e+133"},
		{Decimal32{Mantissa: 100000000, Exponent: -9}, "100000000e-9"},
		{Decimal32{Mantissa: 250000000, Exponent: -8, Negative: true}, "-250000000e-8"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func TestFormat(t *testing.T) {
	x := Decimal64{Mantissa: 230000000000000000, Exponent: -16}
	y := Decimal32{Mantissa: 250000000, Exponent: -8, Negative: true}
	tests := []struct {
		format string
		x      any
		want   string
	}{
		{"%v", x, "230000000000000000e-16"},
		{"%s", x, "230000000000000000e-16"},
		{"%d", x, "23e+0"},
		{"%+d", x, "+23e+0"},
		{"% d", x, " 23e+0"},
		{"%8d", x, "   23e+0"},
		{"%-8d", x, "23e+0   "},
		{"%+8d", x, "  +23e+0"},
		{"%2d", x, "23e+0"},

		{"%v", y, "-250000000e-8"},
		{"%d", y, "-25e-1"},
		{"%+d", y, "-25e-1"},
		{"% d", y, "-25e-1"},
		{"%8d", y, "  -25e-1"},

		{"%d", Decimal64{}, "0e+0"},
		{"%d", Analyze64(0x0000000000000001), "5e-324"},
		{"%d", Analyze32(0x7f7fffff), "34028235e+31"},

		{"%x", x, "%!x(fpconv.Decimal=230000000000000000e-16)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.x)
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.format, tt.want, got)
		}
	}
}
