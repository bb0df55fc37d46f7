// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// Backward computes betas for an observation sequence x of length M.
// Indices are: β(time, state), row 0 is not used.
//
// 1. Initialization: β(M,i) = 1
// 2. Induction:      β(t,z) = sum_j β(t+1,j) a(z,j) o(j,x(t+1));  t=M-1,...,1
//
// When normalize is true, rows M-1..1 are scaled to sum to one. A row that
// sums to zero is left unchanged.
func (m *Model) Backward(x []int, normalize bool) ([][]float64, error) {

	if err := m.check(x); err != nil {
		return nil, err
	}
	return m.beta(x, normalize), nil
}

func (m *Model) beta(x []int, normalize bool) [][]float64 {

	L := m.nstates
	M := len(x)

	β := floatx.MakeFloat2D(M+1, L)

	// 1. Initialization.
	for i := 0; i < L; i++ {
		β[M][i] = 1
	}

	// 2. Induction.
	for t := M - 1; t >= 1; t-- {
		for z := 0; z < L; z++ {
			var sum float64
			for j := 0; j < L; j++ {
				sum += β[t+1][j] * m.a.At(z, j) * m.o.At(j, x[t])
			}
			β[t][z] = sum
		}
		if normalize {
			floatx.Normalize(β[t])
		}
		if glog.V(4) {
			glog.Infof("t: %4d | beta: %v", t, β[t])
		}
	}
	return β
}

// ProbBackward returns P(x) = sum_j β(1,j) π(j) o(j,x(1)) using unscaled betas.
func (m *Model) ProbBackward(x []int) (float64, error) {

	β, err := m.Backward(x, false)
	if err != nil {
		return 0, err
	}
	π := m.StartProbs()
	var prob float64
	for j := 0; j < m.nstates; j++ {
		prob += β[1][j] * π[j] * m.o.At(j, x[0])
	}
	return prob, nil
}
