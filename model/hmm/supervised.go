// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/model"
	"github.com/golang/glog"
)

// FitSupervised estimates the parameters using labeled data. Sequence x[j]
// was produced by the state sequence y[j]. Maximum likelihood estimates:
//
//	               #transitions i=>j
//	a_hat(i,j) = ---------------------
//	               #transitions from i
//
//	               #times state i emits k
//	o_hat(i,k) = -------------------------
//	               #times in state i
//
// Rows of states with no counts are set to zero. The previous parameters
// are overwritten.
func (m *Model) FitSupervised(x, y [][]int) error {

	if err := model.CheckLabeled(x, y, m.nsymbols, m.nstates); err != nil {
		return err
	}

	L := m.nstates
	D := m.nsymbols
	sumTrans := floatx.MakeFloat2D(L, L)
	sumFrom := make([]float64, L)
	sumObs := floatx.MakeFloat2D(L, D)
	sumState := make([]float64, L)

	for j, states := range y {
		T := len(states)
		for t, s := range states {
			sumObs[s][x[j][t]]++
			sumState[s]++
			if t < T-1 {
				sumTrans[s][states[t+1]]++
				sumFrom[s]++
			}
		}
	}

	for i := 0; i < L; i++ {
		if sumFrom[i] == 0 {
			glog.Warningf("hmm [%s]: no transitions from state %d", m.ModelName, i)
		}
		for k := 0; k < L; k++ {
			var v float64
			if sumFrom[i] != 0 {
				v = sumTrans[i][k] / sumFrom[i]
			}
			m.a.Set(i, k, v)
		}

		if sumState[i] == 0 {
			glog.Warningf("hmm [%s]: state %d never observed", m.ModelName, i)
		}
		for k := 0; k < D; k++ {
			var v float64
			if sumState[i] != 0 {
				v = sumObs[i][k] / sumState[i]
			}
			m.o.Set(i, k, v)
		}
	}

	glog.V(1).Infof("hmm [%s]: supervised estimation done using %d sequences", m.ModelName, len(x))
	return nil
}
