package salience

import "math/rand/v2"

// DefaultRandomSample is the sample size of the random baseline strategy.
const DefaultRandomSample = 6

// SelectRandom samples n candidate lines with the provided source. Pools no
// larger than n are returned whole in source order.
func SelectRandom(queryLines []string, n int, rng *rand.Rand) []string {
	candidates := Candidates(queryLines)
	if len(candidates) <= n {
		return candidates
	}

	perm := rng.Perm(len(candidates))

	sample := make([]string, 0, n)
	for _, idx := range perm[:n] {
		sample = append(sample, candidates[idx])
	}

	return sample
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
