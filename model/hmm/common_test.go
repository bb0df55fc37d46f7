package hmm

import (
	"math/rand"
	"testing"

	"github.com/akualab/dhmm/model"
)

// Two state, two symbol model used in several tests.
func makeHMM2(t *testing.T, options ...Option) *Model {

	a := [][]float64{{0.7, 0.3}, {0.4, 0.6}}
	o := [][]float64{{0.9, 0.1}, {0.2, 0.8}}
	m, err := NewModel(a, o, options...)
	fatalIf(t, err)
	return m
}

// Random model with l states and d symbols.
func makeRandHMM(t *testing.T, l, d int, seed int64) *Model {

	r := rand.New(rand.NewSource(seed))
	a := model.RandStochastic(l, l, r)
	o := model.RandStochastic(l, d, r)
	m, err := NewModel(a, o, Seed(seed))
	fatalIf(t, err)
	return m
}

func randSeq(r *rand.Rand, n, d int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = r.Intn(d)
	}
	return x
}

// pathProb returns P(x, path) computed directly from the parameters.
func pathProb(m *Model, x, path []int) float64 {

	p := m.StartProbs()[path[0]] * m.EmissionProb(path[0], x[0])
	for t := 1; t < len(x); t++ {
		p *= m.TransProb(path[t-1], path[t]) * m.EmissionProb(path[t], x[t])
	}
	return p
}

// allPaths enumerates the l^n state sequences of length n.
func allPaths(l, n int) [][]int {

	var paths [][]int
	path := make([]int, n)
	var rec func(t int)
	rec = func(t int) {
		if t == n {
			paths = append(paths, append([]int(nil), path...))
			return
		}
		for s := 0; s < l; s++ {
			path[t] = s
			rec(t + 1)
		}
	}
	rec(0)
	return paths
}

func fatalIf(t *testing.T, err error) {
	if err != nil {
		t.Fatal(err)
	}
}
