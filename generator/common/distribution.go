package common

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
)

// RandomSource is the subset of *rand.Rand the samplers draw from.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
	NormFloat64() float64
}

// NewRandomSource returns a seeded PCG generator; equal seeds replay
// equal simulations.
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Weighted pairs a value with its relative likelihood.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

var ErrEmptyDistribution = errors.New("distribution has no positive weight")

// Distribution draws values with probability proportional to their weight.
type Distribution[T any] struct {
	values     []T
	weights    []float64
	cumulative []float64
	total      float64
}

func NewDistribution[T any](choices []Weighted[T]) (*Distribution[T], error) {
	d := &Distribution[T]{
		values:     make([]T, 0, len(choices)),
		weights:    make([]float64, 0, len(choices)),
		cumulative: make([]float64, 0, len(choices)),
	}
	for _, c := range choices {
		if c.Weight < 0 {
			return nil, fmt.Errorf("negative weight %v for %v", c.Weight, c.Value)
		}
		d.total += c.Weight
		d.values = append(d.values, c.Value)
		d.weights = append(d.weights, c.Weight)
		d.cumulative = append(d.cumulative, d.total)
	}
	if d.total <= 0 {
		return nil, ErrEmptyDistribution
	}
	return d, nil
}

// MustDistribution is NewDistribution for static tables; it panics on an
// invalid table.
func MustDistribution[T any](choices ...Weighted[T]) *Distribution[T] {
	d, err := NewDistribution(choices)
	if err != nil {
		panic(err)
	}
	return d
}

// Sample draws one value. Every draw is independent of the previous ones.
func (d *Distribution[T]) Sample(r RandomSource) T {
	u := r.Float64() * d.total
	i := sort.Search(len(d.cumulative), func(i int) bool { return d.cumulative[i] > u })
	if i == len(d.cumulative) {
		i--
	}
	return d.values[i]
}

func (d *Distribution[T]) Len() int {
	return len(d.values)
}

func (d *Distribution[T]) Values() []T {
	out := make([]T, len(d.values))
	copy(out, d.values)
	return out
}

// Probability returns the chance of drawing the i-th value.
func (d *Distribution[T]) Probability(i int) float64 {
	return d.weights[i] / d.total
}
