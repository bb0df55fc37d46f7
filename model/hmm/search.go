// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/golang/glog"
)

// Viterbi computes the most probable sequence of states for an observation
// sequence x of length M and the joint probability of x and that path.
//
// delta(t, i) = max_{q(1),...,q(t-1)} P(q(1),...,q(t-1), q(t)=i, x(1),...,x(t))
//
// delta(1, i) = π(i) o(i, x(1))
// delta(t, i) = max_k [ delta(t-1, k) a(k, i) o(i, x(t)) ]     2<=t<=M
// index(t, i) = argmax_k [ delta(t-1, k) a(k, i) o(i, x(t)) ]
//
// q*(M) = argmax_i delta(M, i)
// q*(t) = index(t+1, q*(t+1))  t = M-1,...,1
//
// Ties in the recursion go to the largest predecessor k. Ties in the
// termination step go to the smallest state.
func (m *Model) Viterbi(x []int) (path []int, prob float64, err error) {

	if err = m.check(x); err != nil {
		return nil, 0, err
	}

	L := m.nstates
	M := len(x)
	π := m.StartProbs()

	delta := floatx.MakeFloat2D(M+1, L)
	index := floatx.MakeInt2D(M+1, L)

	// Init delta.
	for i := 0; i < L; i++ {
		delta[1][i] = π[i] * m.o.At(i, x[0])
	}

	// Recursion.
	for t := 2; t <= M; t++ {
		for i := 0; i < L; i++ {
			b := m.o.At(i, x[t-1])
			var max float64
			argmax := 0
			for k := 0; k < L; k++ {
				p := delta[t-1][k] * m.a.At(k, i) * b
				if p >= max {
					max = p
					argmax = k
				}
			}
			delta[t][i] = max
			index[t][i] = argmax
		}
	}

	// Termination.
	var max float64
	argmax := 0
	for i := 0; i < L; i++ {
		if delta[M][i] > max {
			max = delta[M][i]
			argmax = i
		}
	}

	// Backtrack.
	path = make([]int, M)
	path[M-1] = argmax
	for t := M; t >= 2; t-- {
		path[t-2] = index[t][path[t-1]]
	}

	if glog.V(3) {
		glog.Infof("viterbi path: %v, prob: %e", path, max)
	}
	return path, max, nil
}

// Decode returns the most likely state sequence for x. See Viterbi().
func (m *Model) Decode(x []int) ([]int, error) {

	path, _, err := m.Viterbi(x)
	return path, err
}
