// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math/rand"

	"github.com/akualab/dhmm/model"
	"github.com/pkg/errors"
)

// Seeds used to initialize the parameters before training.
const (
	TransSeed    = 2020
	EmissionSeed = 155
)

// NewSupervised creates a model and trains it using labeled data.
// The number of states and symbols is inferred from the data.
func NewSupervised(x, y [][]int, options ...Option) (*Model, error) {

	d := model.Cardinality(x)
	l := model.Cardinality(y)
	if d == 0 || l == 0 {
		return nil, errors.Wrap(model.ErrZeroLength, "can't infer model size from empty corpus")
	}
	m, err := newRandModel(l, d, options...)
	if err != nil {
		return nil, err
	}
	if err := m.FitSupervised(x, y); err != nil {
		return nil, err
	}
	return m, nil
}

// NewUnsupervised creates a model with nstates states and trains it using
// Baum-Welch. The number of symbols is inferred from the data.
func NewUnsupervised(x [][]int, nstates, iterations int, options ...Option) (*Model, error) {

	d := model.Cardinality(x)
	if d == 0 {
		return nil, errors.Wrap(model.ErrZeroLength, "can't infer model size from empty corpus")
	}
	if nstates < 1 {
		return nil, errors.Wrapf(model.ErrShape, "num states is %d", nstates)
	}
	m, err := newRandModel(nstates, d, options...)
	if err != nil {
		return nil, err
	}
	if err := m.FitUnsupervised(x, iterations); err != nil {
		return nil, err
	}
	return m, nil
}

// newRandModel creates a model with random row-stochastic parameters. Each
// matrix uses its own fixed seed so results are reproducible.
func newRandModel(l, d int, options ...Option) (*Model, error) {

	a := model.RandStochastic(l, l, rand.New(rand.NewSource(TransSeed)))
	o := model.RandStochastic(l, d, rand.New(rand.NewSource(EmissionSeed)))
	return NewModel(a, o, options...)
}
