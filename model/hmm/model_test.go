// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"math"
	"testing"

	"github.com/akualab/dhmm/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {

	a := [][]float64{{0.7, 0.3}, {0.4, 0.6}}
	o := [][]float64{{0.9, 0.05, 0.05}, {0.2, 0.3, 0.5}}
	m, err := NewModel(a, o, Name("hmm0"))
	require.NoError(t, err)

	assert.Equal(t, "hmm0", m.Name())
	assert.Equal(t, 2, m.NumStates())
	assert.Equal(t, 3, m.NumSymbols())
	assert.Equal(t, []float64{0.5, 0.5}, m.StartProbs())
	assert.Equal(t, 0.3, m.TransProb(0, 1))
	assert.Equal(t, 0.5, m.EmissionProb(1, 2))
	assert.Equal(t, a, m.Trans())
	assert.Equal(t, o, m.Emission())

	// Input values are copied.
	a[0][0] = 0
	assert.Equal(t, 0.7, m.TransProb(0, 0))

	// So are the returned values.
	m.Trans()[0][0] = 0
	assert.Equal(t, 0.7, m.TransProb(0, 0))
	assert.Empty(t, m.Degenerate())
}

func TestNewModelShape(t *testing.T) {

	cases := []struct {
		name string
		a, o [][]float64
	}{
		{"no states", nil, nil},
		{"non square", [][]float64{{1, 0}}, [][]float64{{1}}},
		{"emission rows", [][]float64{{1}}, [][]float64{{1}, {1}}},
		{"no symbols", [][]float64{{1}}, [][]float64{{}}},
		{"ragged emissions", [][]float64{{1, 0}, {0, 1}}, [][]float64{{1, 0}, {1}}},
	}
	for _, c := range cases {
		_, err := NewModel(c.a, c.o)
		assert.True(t, errors.Is(err, model.ErrShape), c.name)
	}
}

func TestDegenerate(t *testing.T) {

	a := [][]float64{{1, 0, 0}, {0.5, 0.5, 0}, {0, 0, 0}}
	o := [][]float64{{1, 0}, {math.NaN(), math.NaN()}, {0.5, 0.5}}
	m, err := NewModel(a, o)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, m.Degenerate())
}

// The model satisfies the generic interfaces.
func TestModeler(t *testing.T) {

	var mod model.Modeler = makeHMM2(t)
	lp, err := mod.LogProb([]int{0, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.119325), lp, 1e-12)
}
