package utils

import (
	"crypto/rand"
	"encoding/hex"
	"hash/fnv"
	mrand "math/rand"
)

// GenerateID returns a short random hex id for viewer sessions.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// StringToSeed hashes a name into a generation seed, so a zone can be
// regenerated by name.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64() &^ (1 << 63))
}

// NewRand returns a generator seeded with seed.
func NewRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}
