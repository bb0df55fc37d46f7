// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/model"
	"github.com/pkg/errors"
)

// Max number of emissions drawn for a single step before giving up.
const maxRetries = 1000

// Vocabulary maps an observation symbol to its token.
type Vocabulary func(index int) string

// SyllableCounter returns the cost of a token given the remaining budget, or
// -1 if the token can't be used. For example, the number of syllables of a
// word when generating lines of verse.
type SyllableCounter func(token string, remaining int) int

// GenerateConstrained generates a sequence whose total cost, as measured by
// count, is exactly budget. Transitions are sampled as in Generate. Emissions
// that don't fit in the remaining budget are rejected and drawn again from
// the same state. Tokens with zero cost are rejected.
func (m *Model) GenerateConstrained(budget int, vocab Vocabulary, count SyllableCounter) (emission, states []int, err error) {

	gen := m.generator
	return gen.fill(gen.preState(), budget, nil, nil, vocab, count)
}

// GenerateSeeded is like GenerateConstrained but the sequence starts with the
// seed symbol. The first state is drawn from P[q | x = seed].
func (m *Model) GenerateSeeded(budget, seed int, vocab Vocabulary, count SyllableCounter) (emission, states []int, err error) {

	s, err := m.StateForSymbol(seed)
	if err != nil {
		return nil, nil, err
	}
	used := count(vocab(seed), budget)
	if used <= 0 || used > budget {
		return nil, nil, errors.Wrapf(model.ErrBudget, "seed symbol %d has cost %d, budget is %d", seed, used, budget)
	}
	return m.generator.fill(s, budget-used, []int{seed}, []int{s}, vocab, count)
}

// StateForSymbol draws a state with probability proportional to o(i, k).
func (m *Model) StateForSymbol(k int) (int, error) {

	if k < 0 || k >= m.nsymbols {
		return -1, errors.Wrapf(model.ErrSymbolRange, "symbol %d not in [0,%d)", k, m.nsymbols)
	}
	dist := make([]float64, m.nstates)
	for i := range dist {
		dist[i] = m.o.At(i, k)
	}
	floatx.Normalize(dist)
	return model.RandIntFromDist(dist, m.r)
}

// fill extends emission and states starting from state s until the
// remaining budget is used up.
func (gen *generator) fill(s, remaining int, emission, states []int, vocab Vocabulary, count SyllableCounter) ([]int, []int, error) {

	var err error
	for remaining > 0 {
		if s, err = gen.nextState(s); err != nil {
			return nil, nil, err
		}
		k, cost := -1, -1
		for try := 0; ; try++ {
			if try == maxRetries {
				return nil, nil, errors.Wrapf(model.ErrBudget,
					"no emission from state %d fits remaining budget %d", s, remaining)
			}
			if k, err = gen.emit(s); err != nil {
				return nil, nil, err
			}
			cost = count(vocab(k), remaining)
			if cost > 0 && cost <= remaining {
				break
			}
		}
		remaining -= cost
		emission = append(emission, k)
		states = append(states, s)
	}
	return emission, states, nil
}
