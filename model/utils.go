package model

import (
	"math"
	"math/rand"

	"github.com/akualab/dhmm/floatx"
	"github.com/pkg/errors"
)

// Tolerance used to accept a distribution as summing to one.
const distTolerance = 0.001

// RandIntFromDist draws an index given a discrete prob distribution.
// Uses the inverse CDF, which is fine for small distributions.
func RandIntFromDist(dist []float64, r *rand.Rand) (int, error) {
	N := len(dist)
	if N == 0 {
		return -1, errors.Wrap(ErrZeroLength, "empty distribution")
	}
	ran := r.Float64()
	cum := 0.0
	for i := 0; i < N; i++ {
		cum = cum + dist[i]
		if ran < cum {
			return i, nil
		}
	}
	if !(math.Abs(cum-1) < distTolerance) {
		return -1, errors.Wrapf(ErrDistribution, "sum is %f", cum)
	}
	return N - 1, nil
}

// RandStochastic returns a [rows x cols] matrix of uniform random values
// with every row normalized to sum to one.
func RandStochastic(rows, cols int, r *rand.Rand) [][]float64 {

	m := floatx.MakeFloat2D(rows, cols)
	for _, row := range m {
		for j := range row {
			row[j] = r.Float64()
		}
	}
	floatx.NormalizeRows(m)
	return m
}

// Uniform returns a distribution of size n with all values equal to 1/n.
func Uniform(n int) []float64 {

	u := make([]float64, n)
	for i := range u {
		u[i] = 1 / float64(n)
	}
	return u
}
