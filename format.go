package fpconv

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = Decimal64{}
var _ fmt.Stringer = Decimal32{}

// String returns d in the form "-mantissa" "e" "exponent", e.g. "230000000000000000e-16".
// It is meant for debugging; it doesn't trim digits or move the decimal point.
func (d Decimal[T]) String() string {
	return string(d.appendText(make([]byte, 0, 32), d.Mantissa, d.Exponent))
}

func (d Decimal[T]) appendText(buf []byte, mant T, exp int32) []byte {
	if d.Negative {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, uint64(mant), 10)
	buf = append(buf, 'e')
	if exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}

// Format implements [fmt.Formatter].
// The verbs %v and %s print the same as String.
// The verb %d prints the digits with trailing zeros removed, e.g. "23e+0".
func (d Decimal[T]) Format(s fmt.State, verb rune) {
	var prefix []byte
	var data []byte

	// sign
	if !d.Negative {
		if s.Flag('+') {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	switch verb {
	case 'v', 's':
		data = d.appendText(data, d.Mantissa, d.Exponent)
	case 'd':
		digits, exp := d.Digits()
		data = d.appendText(data, digits, exp)
	default:
		fmt.Fprintf(s, "%%!%c(fpconv.Decimal=%s)", verb, d.String())
		return
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		buf[0] = ' '
		n := len(prefix) + len(data)
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
		} else {
			for i := n; i < w; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}
