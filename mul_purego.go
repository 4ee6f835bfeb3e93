//go:build purego

package fpconv

import "github.com/shogo82148/int128"

// mul64 returns the 128-bit product of a and b.
func mul64(a, b uint64) int128.Uint128 {
	return mul64Limbs(a, b)
}
