package engine

import "math/rand"

// countingSource counts the values drawn from a rand.Source so a
// generator can be fast-forwarded to the same point after a restore.
type countingSource struct {
	src   rand.Source
	draws int64
}

func (s *countingSource) Int63() int64 {
	s.draws++
	return s.src.Int63()
}

func (s *countingSource) Seed(seed int64) {
	s.draws = 0
	s.src.Seed(seed)
}

// RNG draws the trap items of an item pool. Position counts the values
// drawn from the source so a saved session replays the same draws.
type RNG struct {
	seed int64
	src  *countingSource
	rand *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	src := &countingSource{src: rand.NewSource(seed)}
	return &RNG{seed: seed, src: src, rand: rand.New(src)}
}

// Seed returns the seed the RNG was created from.
func (r *RNG) Seed() int64 { return r.seed }

// WeightedSelect returns an index chosen by weighted random selection.
// Non-positive weights are never chosen. With no positive weight it
// returns 0 without drawing.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := r.rand.Intn(total)
	cumulative := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Position returns the number of values drawn since creation.
func (r *RNG) Position() int64 {
	return r.src.draws
}

// RestoreRNG creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for rng.src.draws < position {
		rng.src.Int63()
	}
	return rng
}
