// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "testing"

func TestAlignStates(t *testing.T) {

	segs := AlignStates([]int{0, 0, 0, 2, 2, 1, 0, 0})
	expected := []Segment{{0, 3, 0}, {3, 5, 2}, {5, 6, 1}, {6, 8, 0}}
	if len(segs) != len(expected) {
		t.Fatalf("got %v, expected %v", segs, expected)
	}
	total := 0
	for i, s := range segs {
		if s != expected[i] {
			t.Fatalf("segment %d is %s, expected %s", i, s, expected[i])
		}
		total += s.Len()
	}
	if total != 8 {
		t.Fatalf("segments cover %d observations, expected 8", total)
	}

	if segs := AlignStates([]int{4}); len(segs) != 1 || segs[0] != (Segment{0, 1, 4}) {
		t.Fatalf("got %v", segs)
	}
	if AlignStates(nil) != nil {
		t.Fatal("expected nil segments")
	}
}
