package model

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// CheckSequence verifies that x is non-empty and every value is in [0,n).
// kind is the error returned for values out of range, ErrSymbolRange or ErrStateRange.
func CheckSequence(x []int, n int, kind Error) error {

	if len(x) == 0 {
		return ErrZeroLength
	}
	for t, v := range x {
		if v < 0 || v >= n {
			return errors.Wrapf(kind, "value %d at position %d not in [0,%d)", v, t, n)
		}
	}
	return nil
}

// CheckCorpus validates every observation sequence in x against an
// alphabet of size d. All bad sequences are reported.
func CheckCorpus(x [][]int, d int) error {

	if len(x) == 0 {
		return errors.Wrap(ErrZeroLength, "empty corpus")
	}
	var merr *multierror.Error
	for j, seq := range x {
		if err := CheckSequence(seq, d, ErrSymbolRange); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "sequence %d", j))
		}
	}
	return merr.ErrorOrNil()
}

// CheckLabeled validates a labeled corpus. Sequence x[j] must have the same
// length as y[j], symbols must be in [0,d) and states in [0,l).
func CheckLabeled(x, y [][]int, d, l int) error {

	if len(x) != len(y) {
		return errors.Wrapf(ErrLength, "%d observation sequences, %d state sequences", len(x), len(y))
	}
	if len(x) == 0 {
		return errors.Wrap(ErrZeroLength, "empty corpus")
	}
	var merr *multierror.Error
	for j := range x {
		if len(x[j]) != len(y[j]) {
			merr = multierror.Append(merr, errors.Wrapf(ErrLength,
				"sequence %d has %d observations and %d states", j, len(x[j]), len(y[j])))
			continue
		}
		if err := CheckSequence(x[j], d, ErrSymbolRange); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "sequence %d", j))
		}
		if err := CheckSequence(y[j], l, ErrStateRange); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "state sequence %d", j))
		}
	}
	return merr.ErrorOrNil()
}

// Cardinality returns the size of the alphabet used by a corpus, that is
// the largest value plus one. Returns zero for an empty corpus.
func Cardinality(x [][]int) int {

	n := 0
	for _, seq := range x {
		for _, v := range seq {
			if v+1 > n {
				n = v + 1
			}
		}
	}
	return n
}
