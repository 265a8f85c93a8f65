// Package randutil centralises how deterministic random sources are built
// so every call site seeds rand/v2 the same way.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit words, so the seed is stretched through a
// splitmix64 finalizer to decorrelate nearby seeds.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seeds derives n child seeds from a parent seed. Parallel runs hand each
// worker its own child seed so results stay reproducible regardless of how
// the workers get scheduled.
func Seeds(seed int64, n int) []int64 {
	out := make([]int64, n)
	u := mix(uint64(seed))
	for i := range out {
		u += goldenRatio64
		out[i] = int64(mix(u))
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
