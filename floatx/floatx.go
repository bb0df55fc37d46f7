// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatx provides helpers to allocate and manipulate the 2-D float
// slices used as dynamic programming tables.
package floatx

import (
	"gonum.org/v1/gonum/floats"
)

type Error string

func (err Error) Error() string { return string(err) }

const (
	ErrZeroLength = Error("floatx: zero length in slice definition")
	ErrLength     = Error("floatx: length mismatch")
)

// MakeFloat2D allocates a zeroed [n1 x n2] slice.
func MakeFloat2D(n1, n2 int) [][]float64 {

	s := make([][]float64, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]float64, n2)
	}

	return s
}

// MakeInt2D allocates a zeroed [n1 x n2] int slice.
func MakeInt2D(n1, n2 int) [][]int {

	s := make([][]int, n1)
	for i := 0; i < n1; i++ {
		s[i] = make([]int, n2)
	}

	return s
}

// Check2D returns the shape of s. Panics if s is empty or ragged.
func Check2D(s [][]float64) (n1, n2 int) {

	n1 = len(s)
	if n1 == 0 {
		panic(ErrZeroLength)
	}

	n2 = len(s[0])
	if n2 == 0 {
		panic(ErrZeroLength)
	}
	for _, row := range s[1:] {
		if len(row) != n2 {
			panic(ErrLength)
		}
	}

	return n1, n2
}

// Flatten2D returns the rows of s concatenated in a single slice.
func Flatten2D(s [][]float64) []float64 {

	n1, n2 := Check2D(s)
	out := make([]float64, 0, n1*n2)
	for _, row := range s {
		out = append(out, row...)
	}
	return out
}

// Normalize divides s by its sum in place and returns the sum.
// When the sum is exactly zero s is left unchanged.
func Normalize(s []float64) float64 {

	sum := floats.Sum(s)
	if sum != 0 {
		floats.Scale(1/sum, s)
	}
	return sum
}

// NormalizeRows applies Normalize to every row of s.
func NormalizeRows(s [][]float64) {

	for _, row := range s {
		Normalize(row)
	}
}

// Clear sets all values to zero.
func Clear(s []float64) {

	for i := range s {
		s[i] = 0
	}
}

// Clear2D sets all values to zero.
func Clear2D(s [][]float64) {

	for _, row := range s {
		Clear(row)
	}
}
