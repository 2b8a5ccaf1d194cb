package util

import "hash/fnv"

// HashString returns a stable 64-bit FNV-1a hash of s.
func HashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// HashMod returns HashString(s) mod m as an int in [0, m).
func HashMod(s string, m int) int {
	if m <= 0 {
		return 0
	}
	return int(HashString(s) % uint64(m))
}

// SeedFromString derives a non-negative PRNG seed from s.
func SeedFromString(s string) int64 {
	return int64(HashString(s) & 0x7fffffffffffffff)
}
