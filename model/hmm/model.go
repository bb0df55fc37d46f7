// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hmm provides an implementation of discrete hidden Markov models.

A model has L hidden states and an alphabet of D observation symbols:

	A     [L x L]  a(i,j) = P[q(t+1) = j | q(t) = i]
	O     [L x D]  o(i,k) = P[x(t) = k | q(t) = i]
	π     [L]      π(i) = P[q(1) = i] = 1/L

The initial state distribution is uniform and is not estimated. Parameters
are estimated with closed form counts (FitSupervised) or Baum-Welch
(FitUnsupervised) and overwritten in place. A Model is not safe for
concurrent use: do not fit a model while it is being used to decode, score
or generate.
*/
package hmm

import (
	"math"
	"math/rand"

	"github.com/akualab/dhmm/floatx"
	"github.com/akualab/dhmm/model"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ model.Modeler = (*Model)(nil)

// Model is a discrete hidden Markov model.
type Model struct {

	// Model name.
	ModelName string `json:"name"`

	// Num states (L) and size of the observation alphabet (D).
	nstates  int
	nsymbols int

	// State transition probabilities. [L x L]
	a *mat.Dense

	// Emission probabilities. [L x D]
	o *mat.Dense

	seed      int64
	r         *rand.Rand
	generator *generator
	onIter    func(iter int, m *Model)
}

// Option type is used to pass options to NewModel().
type Option func(*Model)

// NewModel creates a new HMM using transition probabilities a [L x L] and
// emission probabilities o [L x D]. The values are copied. Rows are assumed
// to sum to one, this is not verified.
func NewModel(a, o [][]float64, options ...Option) (*Model, error) {

	l := len(a)
	if l == 0 {
		return nil, errors.Wrap(model.ErrShape, "no states")
	}
	for i, row := range a {
		if len(row) != l {
			return nil, errors.Wrapf(model.ErrShape, "transition row %d has len %d, expected %d", i, len(row), l)
		}
	}
	if len(o) != l {
		return nil, errors.Wrapf(model.ErrShape, "emission matrix has %d rows, expected %d", len(o), l)
	}
	d := len(o[0])
	if d == 0 {
		return nil, errors.Wrap(model.ErrShape, "no observation symbols")
	}
	for i, row := range o {
		if len(row) != d {
			return nil, errors.Wrapf(model.ErrShape, "emission row %d has len %d, expected %d", i, len(row), d)
		}
	}

	m := &Model{
		ModelName: "HMM",
		nstates:   l,
		nsymbols:  d,
		a:         mat.NewDense(l, l, floatx.Flatten2D(a)),
		o:         mat.NewDense(l, d, floatx.Flatten2D(o)),
		seed:      model.DefaultSeed,
	}

	// Set options.
	for _, option := range options {
		option(m)
	}
	if m.r == nil {
		m.r = rand.New(rand.NewSource(m.seed))
	}
	m.generator = newGenerator(m, m.r)

	glog.Infof("new hmm [%s], num states: %d, num symbols: %d", m.ModelName, l, d)
	if glog.V(3) {
		glog.Infof("trans probs:\n%v", mat.Formatted(m.a))
		glog.Infof("emission probs:\n%v", mat.Formatted(m.o))
	}
	return m, nil
}

// NumStates returns the number of hidden states.
func (m *Model) NumStates() int { return m.nstates }

// NumSymbols returns the size of the observation alphabet.
func (m *Model) NumSymbols() int { return m.nsymbols }

// TransProb returns P[q(t+1) = j | q(t) = i].
func (m *Model) TransProb(i, j int) float64 { return m.a.At(i, j) }

// EmissionProb returns P[x(t) = k | q(t) = i].
func (m *Model) EmissionProb(i, k int) float64 { return m.o.At(i, k) }

// Trans returns a copy of the transition matrix.
func (m *Model) Trans() [][]float64 { return rows(m.a) }

// Emission returns a copy of the emission matrix.
func (m *Model) Emission() [][]float64 { return rows(m.o) }

// StartProbs returns the initial state distribution, which is uniform.
func (m *Model) StartProbs() []float64 { return model.Uniform(m.nstates) }

// Degenerate returns the states whose transition or emission row sums to
// zero or contains NaN. This happens after estimation when a state is never
// visited. Sampling from these states fails.
func (m *Model) Degenerate() []int {

	var states []int
	for i := 0; i < m.nstates; i++ {
		if badRow(m.a.RawRowView(i)) || badRow(m.o.RawRowView(i)) {
			states = append(states, i)
		}
	}
	return states
}

func badRow(row []float64) bool {
	s := floats.Sum(row)
	return s == 0 || math.IsNaN(s)
}

func rows(d *mat.Dense) [][]float64 {
	r, _ := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, d)
	}
	return out
}

// check validates an observation sequence.
func (m *Model) check(x []int) error {
	return model.CheckSequence(x, m.nsymbols, model.ErrSymbolRange)
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.ModelName
}

// Name is an option to set the model name.
func Name(name string) Option {
	return func(m *Model) { m.ModelName = name }
}

// Seed sets a seed value for random functions.
// Uses default seed value if omitted.
func Seed(seed int64) Option {
	return func(m *Model) { m.seed = seed }
}

// Rand sets the source of randomness used by the generators.
// Overrides Seed.
func Rand(r *rand.Rand) Option {
	return func(m *Model) { m.r = r }
}

// OnIteration sets a function called after each Baum-Welch iteration, once
// the parameters are updated.
func OnIteration(fn func(iter int, m *Model)) Option {
	return func(m *Model) { m.onIter = fn }
}
