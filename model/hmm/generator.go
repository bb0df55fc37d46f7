// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/akualab/dhmm/model"
	"github.com/pkg/errors"
)

// generator generates random observations using an hmm model.
type generator struct {
	hmm *Model
	r   *rand.Rand
}

func newGenerator(hmm *Model, r *rand.Rand) *generator {
	return &generator{
		hmm: hmm,
		r:   r,
	}
}

// preState draws the state used to pick the first transition. It is never emitted.
func (gen *generator) preState() int {
	return gen.r.Intn(gen.hmm.nstates)
}

func (gen *generator) nextState(s int) (int, error) {
	next, err := model.RandIntFromDist(gen.hmm.a.RawRowView(s), gen.r)
	if err != nil {
		return -1, errors.Wrapf(err, "transition from state %d", s)
	}
	return next, nil
}

func (gen *generator) emit(s int) (int, error) {
	k, err := model.RandIntFromDist(gen.hmm.o.RawRowView(s), gen.r)
	if err != nil {
		return -1, errors.Wrapf(err, "emission from state %d", s)
	}
	return k, nil
}

// next returns an observation sequence of length n and its states.
func (gen *generator) next(n int) (emission, states []int, err error) {

	if n < 0 {
		return nil, nil, errors.Wrapf(model.ErrLength, "can't generate sequence of length %d", n)
	}
	emission = make([]int, 0, n)
	states = make([]int, 0, n)
	s := gen.preState()
	var k int
	for i := 0; i < n; i++ {
		if s, err = gen.nextState(s); err != nil {
			return nil, nil, err
		}
		if k, err = gen.emit(s); err != nil {
			return nil, nil, err
		}
		emission = append(emission, k)
		states = append(states, s)
	}
	return emission, states, nil
}

// Generate returns a random observation sequence of the given length and
// the states that produced it. The first state is drawn by transitioning
// from a state chosen uniformly at random. Sequences are reproducible for a
// fixed seed (see Seed and Rand options).
func (m *Model) Generate(length int) (emission, states []int, err error) {
	return m.generator.next(length)
}
