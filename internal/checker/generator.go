package checker

import "math/rand"

//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks

type generator interface {
	Int() int
}

// NewRandGenerator returns a deterministic pseudo-random source for seed.
func NewRandGenerator(seed int64) generator {
	return rand.New(rand.NewSource(seed)) //nolint:gosec
}
