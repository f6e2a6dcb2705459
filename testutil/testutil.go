package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/raygo/tuple"
)

const (
	gridSteps = 80 // quarter units in [-10, 10)
	gridScale = 4
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Coord returns a grid-aligned coordinate in [-10, 10).
func (r *RNG) Coord() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coord()
}

// Point returns a random point.
func (r *RNG) Point() tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tuple.NewPoint(r.coord(), r.coord(), r.coord())
}

// Vector returns a random vector.
func (r *RNG) Vector() tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tuple.NewVector(r.coord(), r.coord(), r.coord())
}

// Tuple returns a random tuple whose w is also drawn from the grid, so it is
// usually neither a point nor a vector.
func (r *RNG) Tuple() tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tuple.New(r.coord(), r.coord(), r.coord(), r.coord())
}

// Points generates n random points.
// Locks only once per call.
func (r *RNG) Points(n int) []tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tuple.Tuple, n)
	for i := range out {
		out[i] = tuple.NewPoint(r.coord(), r.coord(), r.coord())
	}
	return out
}

// Vectors generates n random vectors.
func (r *RNG) Vectors(n int) []tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tuple.Tuple, n)
	for i := range out {
		out[i] = tuple.NewVector(r.coord(), r.coord(), r.coord())
	}
	return out
}

func (r *RNG) coord() float32 {
	return float32(r.rand.Intn(gridSteps)-gridSteps/2) / gridScale
}
