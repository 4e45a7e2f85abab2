// SPDX-License-Identifier: MIT
// Package: pathlab/pairindex
//
// isqrt.go - exact integer square root used to unrank pairs.

package pairindex

import "math"

// maxRoot is ⌊√(2⁶⁴-1)⌋; squaring anything larger overflows uint64.
const maxRoot = 1<<32 - 1

// ISqrt returns ⌊√x⌋ exactly for every uint64.
// A float64 root seeds the result, then integer steps remove the rounding
// error that float64 has above 2⁵³.
func ISqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > x {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= x {
		r++
	}

	return r
}
