package experiment

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const defaultRNGSeed int64 = 1

// Stream purposes within one trial.
const (
	streamGraph uint64 = iota
	streamHeuristic
)

// deriveSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// trialSeed derives the seed for one purpose of one trial.
// Layout: ordinal in the high 32 bits, repetition and purpose below.
func trialSeed(root int64, ordinal, rep int, purpose uint64) int64 {
	if root == 0 {
		root = defaultRNGSeed
	}
	stream := uint64(ordinal)<<32 | uint64(rep)<<2 | purpose

	return deriveSeed(root, stream)
}

func trialRNG(root int64, ordinal, rep int, purpose uint64) *rand.Rand {
	return rand.New(rand.NewSource(trialSeed(root, ordinal, rep, purpose)))
}

var batchNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/hampath/batch"))

// batchID is a name-based UUID (v5) over everything that determines the
// batch's sampled content.
func batchID(root int64, ordinal, n int, label string, reps int) uuid.UUID {
	name := fmt.Sprintf("seed=%d/ordinal=%d/n=%d/density=%s/reps=%d", root, ordinal, n, label, reps)

	return uuid.NewSHA1(batchNamespace, []byte(name))
}
