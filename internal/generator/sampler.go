package generator

import (
	"math"
	"math/rand"
	"sort"
)

// Sampler is the single seeded random source threaded through every pipeline stage.
// Reusing a seed and the same call order reproduces the same draws.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler constructs a Sampler seeded with seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Normal draws from N(mu, sigma).
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return mu + sigma*s.rng.NormFloat64()
}

// IntRange draws a uniform integer in [lo, hi).
func (s *Sampler) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}

// Choice draws an index according to weights, which must sum to 1.
func (s *Sampler) Choice(weights []float64) int {
	u := s.rng.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if u < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// SampleIndices picks k distinct indices from [0, n) without replacement and
// returns them in ascending order.
func (s *Sampler) SampleIndices(n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	picked := append([]int(nil), pool[:k]...)
	sort.Ints(picked)
	return picked
}

// SampleSize converts a fraction of n rows into an exact row count.
// Halves round to even.
func SampleSize(n int, fraction float64) int {
	return int(math.RoundToEven(fraction * float64(n)))
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clipInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
