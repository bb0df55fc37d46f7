// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/model"
	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"
)

// Sufficient statistics for Baum-Welch.
type stats struct {
	sumXi      [][]float64 // [L x L]
	sumGammaA  []float64   // [L] without t = M
	sumGammaO  [][]float64 // [L x D]
	sumGamma   []float64   // [L]
	numSeqs    int
	numSymbols int

	// workspace
	γ []float64
	ζ [][]float64
}

func newStats(L, D int) *stats {
	return &stats{
		sumXi:     floatx.MakeFloat2D(L, L),
		sumGammaA: make([]float64, L),
		sumGammaO: floatx.MakeFloat2D(L, D),
		sumGamma:  make([]float64, L),
		γ:         make([]float64, L),
		ζ:         floatx.MakeFloat2D(L, L),
	}
}

func (s *stats) clear() {
	floatx.Clear2D(s.sumXi)
	floatx.Clear(s.sumGammaA)
	floatx.Clear2D(s.sumGammaO)
	floatx.Clear(s.sumGamma)
	s.numSeqs = 0
	s.numSymbols = 0
}

// FitUnsupervised estimates the parameters from observations only using the
// Baum-Welch algorithm. Runs exactly the requested number of iterations,
// convergence is not checked. Each iteration is a full pass over x followed
// by a single update of the parameters.
//
// A state with no posterior mass produces NaN parameters for that state.
// Use Degenerate() to find them.
func (m *Model) FitUnsupervised(x [][]int, iterations int) error {

	if err := model.CheckCorpus(x, m.nsymbols); err != nil {
		return err
	}

	s := newStats(m.nstates, m.nsymbols)
	for iter := 0; iter < iterations; iter++ {
		s.clear()
		for _, seq := range x {
			m.update(s, seq)
		}
		m.estimate(s)

		glog.V(1).Infof("hmm [%s]: iter %d, num seqs: %d, num symbols: %d",
			m.ModelName, iter, s.numSeqs, s.numSymbols)
		if glog.V(2) {
			lp, _ := m.CorpusLogProb(x)
			glog.Infof("hmm [%s]: iter %d, log prob: %f", m.ModelName, iter, lp)
		}
		if m.onIter != nil {
			m.onIter(iter, m)
		}
	}
	if states := m.Degenerate(); len(states) > 0 {
		glog.Warningf("hmm [%s]: degenerate states after training: %v", m.ModelName, states)
	}
	return nil
}

// update accumulates the statistics for one sequence (E-step).
//
//	               α(t,i) β(t,i)
//	γ(t,i) = -------------------------
//	          sum_j α(t,j) β(t,j)
//
//	                     α(t,i) a(i,j) o(j,x(t+1)) β(t+1,j)
//	ζ(t,i,j) = ----------------------------------------------------
//	            sum_i sum_j α(t,i) a(i,j) o(j,x(t+1)) β(t+1,j)
//
// The scale factors of α and β cancel in both ratios.
func (m *Model) update(s *stats, x []int) {

	L := m.nstates
	M := len(x)
	α := m.alpha(x, true)
	β := m.beta(x, true)
	γ := s.γ
	ζ := s.ζ

	for t := 1; t <= M; t++ {
		for i := 0; i < L; i++ {
			γ[i] = α[t][i] * β[t][i]
		}
		floats.Scale(1/floats.Sum(γ), γ)

		for i := 0; i < L; i++ {
			s.sumGammaO[i][x[t-1]] += γ[i]
			s.sumGamma[i] += γ[i]
			if t != M {
				s.sumGammaA[i] += γ[i]
			}
		}
	}

	for t := 1; t < M; t++ {
		var sum float64
		for i := 0; i < L; i++ {
			for j := 0; j < L; j++ {
				ζ[i][j] = α[t][i] * m.a.At(i, j) * m.o.At(j, x[t]) * β[t+1][j]
				sum += ζ[i][j]
			}
		}
		for i := 0; i < L; i++ {
			for j := 0; j < L; j++ {
				s.sumXi[i][j] += ζ[i][j] / sum
			}
		}
	}

	s.numSeqs++
	s.numSymbols += M
}

// estimate updates the parameters using the accumulated statistics (M-step).
//
//	              sum_t ζ(t,i,j)                      sum_{t: x(t)=k} γ(t,i)
//	a_hat(i,j) = -----------------------  o_hat(i,k) = ----------------------
//	              sum_{t=1}^{M-1} γ(t,i)                  sum_t γ(t,i)
//
// Sums run over all sequences. Zero denominators are not guarded.
func (m *Model) estimate(s *stats) {

	for i := 0; i < m.nstates; i++ {
		for j := 0; j < m.nstates; j++ {
			m.a.Set(i, j, s.sumXi[i][j]/s.sumGammaA[i])
		}
		for k := 0; k < m.nsymbols; k++ {
			m.o.Set(i, k, s.sumGammaO[i][k]/s.sumGamma[i])
		}
	}
}
