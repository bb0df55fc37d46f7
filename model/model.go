// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the contracts shared by discrete sequence models
// and the helpers used to validate data and draw random values.
package model

const (
	// DefaultSeed provided for model implementation.
	DefaultSeed = 33
)

// Error is the type of the sentinel errors returned by models.
type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength   = Error("model: zero length sequence or corpus")
	ErrLength       = Error("model: bad sequence length")
	ErrSymbolRange  = Error("model: observation symbol out of range")
	ErrStateRange   = Error("model: state out of range")
	ErrShape        = Error("model: bad matrix shape")
	ErrDistribution = Error("model: distribution doesn't sum to 1")
	ErrBudget       = Error("model: unable to fill budget")
)

// A Modeler type is a complete implementation of a discrete sequence model.
type Modeler interface {

	// The model name.
	Name() string

	// Number of hidden states.
	NumStates() int

	// Size of the observation alphabet.
	NumSymbols() int

	Trainer
	Decoder
	Scorer
	Sampler
}

// A Trainer type estimates its parameters from data. Parameters are
// overwritten in place.
type Trainer interface {

	// Closed form estimation using observations x and state labels y.
	FitSupervised(x, y [][]int) error

	// Iterative estimation using observations only.
	FitUnsupervised(x [][]int, iterations int) error
}

// Decoder returns the most likely state sequence for an observation sequence.
type Decoder interface {
	Decode(x []int) ([]int, error)
}

// Scorer computes log probabilities.
type Scorer interface {
	LogProb(x []int) (float64, error)
}

// The Sampler type generates random data using the model.
type Sampler interface {
	// Returns an observation sequence of the requested length and
	// the state sequence that produced it.
	Generate(length int) (emission, states []int, err error)
}
