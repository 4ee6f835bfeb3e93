package fpconv

import (
	"github.com/shogo82148/int128"
)

// rshCeil returns x>>n rounded toward positive infinity.
func rshCeil(x int128.Uint128, n uint) int128.Uint128 {
	q := x.Rsh(n)
	if q.Lsh(n) != x {
		q = q.Add(int128.Uint128{L: 1})
	}
	return q
}

// rshRound returns x>>n rounded to nearest, ties away from zero.
func rshRound(x int128.Uint128, n uint) int128.Uint128 {
	if n == 0 {
		return x
	}
	if n > 128 {
		return int128.Uint128{}
	}
	q := x.Rsh(n)
	if bit(x, n-1) {
		q = q.Add(int128.Uint128{L: 1})
	}
	return q
}

// bit reports whether the n-th bit of x is set.
func bit(x int128.Uint128, n uint) bool {
	return x.Rsh(n).L&1 != 0
}
