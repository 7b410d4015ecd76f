package zonemap

// Rand is the randomness source every generation step draws from.
// *math/rand.Rand satisfies it; tests pass a fixed seed.
type Rand interface {
	Intn(n int) int
	Int63() int64
}

// randRange returns a value in [lo, hi].
func randRange(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return rng.Intn(hi-lo+1) + lo
}
