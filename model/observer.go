package model

import (
	"encoding/json"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Seq is a data format to represent a sequence of observation symbols and,
// optionally, the states that produced them. We use it to read json data.
type Seq struct {
	Obs    []int  `json:"obs"`
	States []int  `json:"states,omitempty"`
	ID     string `json:"id,omitempty"`
}

// ReadSeqs reads a stream of JSON-encoded Seq values. Each JSON object must
// be separated by a newline.
//
//	{"id": "s1", "obs": [0, 2, 1], "states": [0, 0, 1]}
//	{"id": "s2", "obs": [1, 1]}
func ReadSeqs(reader io.Reader) ([]Seq, error) {

	var seqs []Seq
	dec := json.NewDecoder(reader)
	for {
		var v Seq
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode sequence %d", len(seqs))
		}
		seqs = append(seqs, v)
	}
	glog.V(2).Infof("read %d sequences", len(seqs))
	return seqs, nil
}

// ReadSeqsFile reads sequences from a file. See ReadSeqs().
func ReadSeqsFile(fn string) ([]Seq, error) {

	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeqs(f)
}

// Corpus splits sequences into observations and states. The states slice is
// nil unless every sequence is labeled.
func Corpus(seqs []Seq) (x, y [][]int) {

	x = make([][]int, len(seqs))
	labeled := len(seqs) > 0
	for i, s := range seqs {
		x[i] = s.Obs
		if s.States == nil {
			labeled = false
		}
	}
	if !labeled {
		return x, nil
	}
	y = make([][]int, len(seqs))
	for i, s := range seqs {
		y[i] = s.States
	}
	return x, y
}
