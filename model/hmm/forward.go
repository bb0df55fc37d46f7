// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"

	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Forward computes alphas for an observation sequence x of length M.
// Indices are: α(time, state), row 0 is not used.
//
//	α = | -         -         ...  -          |
//	    | α(1,0),   α(1,1)    ...  α(1,L-1)   |
//	    ...
//	    | α(M,0),   α(M,1)    ...  α(M,L-1)   |
//
//	1. Initialization: α(1,i) = π(i) o(i,x(1))
//	2. Induction:      α(t,z) = o(z,x(t)) sum_j α(t-1,j) a(j,z);  2<=t<=M
//	3. Termination:    P(x) = sum_j α(M,j)
//
// When normalize is true, rows 2..M are scaled to sum to one. A row that
// sums to zero is left unchanged.
func (m *Model) Forward(x []int, normalize bool) ([][]float64, error) {

	if err := m.check(x); err != nil {
		return nil, err
	}
	return m.alpha(x, normalize), nil
}

func (m *Model) alpha(x []int, normalize bool) [][]float64 {

	L := m.nstates
	M := len(x)
	π := m.StartProbs()

	α := floatx.MakeFloat2D(M+1, L)

	// 1. Initialization.
	for i := 0; i < L; i++ {
		α[1][i] = π[i] * m.o.At(i, x[0])
	}

	// 2. Induction.
	for t := 2; t <= M; t++ {
		for z := 0; z < L; z++ {
			var sum float64
			for j := 0; j < L; j++ {
				sum += α[t-1][j] * m.a.At(j, z)
			}
			α[t][z] = sum * m.o.At(z, x[t-1])
		}
		if normalize {
			floatx.Normalize(α[t])
		}
		if glog.V(4) {
			glog.Infof("t: %4d | alpha: %v", t, α[t])
		}
	}
	return α
}

// ProbForward returns P(x) = sum_j α(M,j) using unscaled alphas.
func (m *Model) ProbForward(x []int) (float64, error) {

	α, err := m.Forward(x, false)
	if err != nil {
		return 0, err
	}
	return floats.Sum(α[len(x)]), nil
}

// SequenceProb returns the probability of the observation sequence x.
func (m *Model) SequenceProb(x []int) (float64, error) {
	return m.ProbForward(x)
}

// LogProb returns log P(x). Alphas are scaled at every step and the log of
// the scale factors is accumulated, so long sequences don't underflow.
// For details see Rabiner/Juang.
func (m *Model) LogProb(x []int) (float64, error) {

	if err := m.check(x); err != nil {
		return 0, err
	}

	L := m.nstates
	π := m.StartProbs()
	α := make([]float64, L)
	next := make([]float64, L)

	for i := 0; i < L; i++ {
		α[i] = π[i] * m.o.At(i, x[0])
	}
	logProb := math.Log(floatx.Normalize(α))

	for t := 1; t < len(x); t++ {
		for z := 0; z < L; z++ {
			var sum float64
			for j := 0; j < L; j++ {
				sum += α[j] * m.a.At(j, z)
			}
			next[z] = sum * m.o.At(z, x[t])
		}
		logProb += math.Log(floatx.Normalize(next))
		α, next = next, α
	}
	return logProb, nil
}

// CorpusLogProb returns the sum of LogProb over all sequences in x.
func (m *Model) CorpusLogProb(x [][]int) (float64, error) {

	var total float64
	for _, seq := range x {
		lp, err := m.LogProb(seq)
		if err != nil {
			return 0, err
		}
		total += lp
	}
	return total, nil
}
