// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/hash.go
// Summary: Stateless per-cell pseudo-randomness.
// Notes: Output depends only on (seed, x, y), never on iteration order.

package effects

// DefaultSeed is used by effects that were not given an explicit seed.
const DefaultSeed uint64 = 0x7e1e_f00d_5eed_2025

// cellHash mixes the seed and coordinates with the splitmix64 finalizer.
func cellHash(seed uint64, x, y int) uint64 {
	h := seed ^ (uint64(uint32(x)) * 0x9e3779b97f4a7c15) ^ (uint64(uint32(y)) * 0xc2b2ae3d27d4eb4f)
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// cellUnit maps a cell to a stable value in [0,1).
func cellUnit(seed uint64, x, y int) float32 {
	// 24 bits keep the result exactly representable and strictly below 1.
	return float32(cellHash(seed, x, y)>>40) / float32(1<<24)
}

// cellOffset maps a cell to a stable integer in [0, n].
func cellOffset(seed uint64, x, y, n int) int {
	if n <= 0 {
		return 0
	}
	return int(cellHash(seed, x, y) % uint64(n+1))
}
