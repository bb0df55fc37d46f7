// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "fmt"

// Segment is an interval of a sequence assigned to a single state.
type Segment struct {
	// Start index (inclusive)
	Start int `json:"s"`
	// End index (exclusive)
	End int `json:"e"`
	// State that produced the interval.
	State int `json:"q"`
}

// Len returns the number of observations in the segment.
func (s Segment) Len() int { return s.End - s.Start }

func (s Segment) String() string {
	return fmt.Sprintf("%d[%d,%d)", s.State, s.Start, s.End)
}

// AlignStates converts a state sequence to segments. Consecutive elements
// with the same state are merged. The segments cover [0,len(states)) without
// gaps. Returns nil for an empty sequence.
func AlignStates(states []int) []Segment {

	if len(states) == 0 {
		return nil
	}
	var segs []Segment
	seg := Segment{Start: 0, State: states[0]}
	for idx, v := range states {
		if v != seg.State {
			seg.End = idx
			segs = append(segs, seg)
			seg = Segment{Start: idx, State: v}
		}
	}
	seg.End = len(states)
	return append(segs, seg)
}
