//go:build !purego

package fpconv

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// mul64 returns the 128-bit product of a and b.
func mul64(a, b uint64) int128.Uint128 {
	var p int128.Uint128
	p.H, p.L = bits.Mul64(a, b)
	return p
}
