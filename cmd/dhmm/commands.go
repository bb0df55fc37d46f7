// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/akualab/dhmm"
	"github.com/akualab/dhmm/model"
	"github.com/akualab/dhmm/model/hmm"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

// Command line flags override config values.
func mergeFlags(config *dhmm.Config) {

	if len(*trainData) > 0 {
		config.DataSet = *trainData
	}
	if *trainStates > 0 {
		config.HMM.NumStates = *trainStates
	}
	if *trainIter > 0 {
		config.HMM.NumIterations = *trainIter
	}
	if *trainSupervise {
		config.HMM.Supervised = true
	}
}

func readCorpus(fn string) (x, y [][]int, ids []string, err error) {

	if len(fn) == 0 {
		return nil, nil, nil, errors.New("missing corpus file, use --data or set data_set in config")
	}
	seqs, err := model.ReadSeqsFile(fn)
	if err != nil {
		return nil, nil, nil, err
	}
	ids = make([]string, len(seqs))
	for i, s := range seqs {
		ids[i] = s.ID
	}
	x, y = model.Corpus(seqs)
	return x, y, ids, nil
}

func doTrain(config *dhmm.Config) error {

	mergeFlags(config)
	glog.Infof("train config: %+v", *config)
	x, y, _, err := readCorpus(config.DataSet)
	if err != nil {
		return err
	}

	var m *hmm.Model
	if config.HMM.Supervised {
		if y == nil {
			return errors.Wrapf(model.ErrLength, "corpus %s has unlabeled sequences", config.DataSet)
		}
		m, err = hmm.NewSupervised(x, y, hmm.Name(*trainName))
	} else {
		bar := progressbar.New(config.HMM.NumIterations)
		m, err = hmm.NewUnsupervised(x, config.HMM.NumStates, config.HMM.NumIterations,
			hmm.Name(*trainName),
			hmm.OnIteration(func(iter int, m *hmm.Model) { bar.Add(1) }))
		bar.Finish()
	}
	if err != nil {
		return err
	}
	if states := m.Degenerate(); len(states) > 0 {
		glog.Warningf("states %v were never visited during training", states)
	}
	return m.WriteFile(*trainOut)
}

// Decoded sequence.
type decoded struct {
	model.Seq
	Segments []model.Segment `json:"segments"`
}

func doDecode(config *dhmm.Config, w io.Writer) error {

	m, err := hmm.ReadFile(*decodeModel)
	if err != nil {
		return err
	}
	fn := config.DataSet
	if len(*decodeData) > 0 {
		fn = *decodeData
	}
	x, _, ids, err := readCorpus(fn)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for i, seq := range x {
		path, err := m.Decode(seq)
		if err != nil {
			return errors.Wrapf(err, "sequence %d", i)
		}
		if err := enc.Encode(decoded{
			Seq:      model.Seq{ID: ids[i], Obs: seq, States: path},
			Segments: model.AlignStates(path),
		}); err != nil {
			return err
		}
	}
	return nil
}

func doScore(config *dhmm.Config, w io.Writer) error {

	m, err := hmm.ReadFile(*scoreModel)
	if err != nil {
		return err
	}
	fn := config.DataSet
	if len(*scoreData) > 0 {
		fn = *scoreData
	}
	x, _, ids, err := readCorpus(fn)
	if err != nil {
		return err
	}

	var total float64
	for i, seq := range x {
		lp, err := m.LogProb(seq)
		if err != nil {
			return errors.Wrapf(err, "sequence %d", i)
		}
		total += lp
		fmt.Fprintf(w, "%s\t%f\n", ids[i], lp)
	}
	glog.Infof("total log prob: %f, num seqs: %d", total, len(x))
	return nil
}

func doRand(config *dhmm.Config, w io.Writer) error {

	seed := config.HMM.GeneratorSeed
	if *randSeed != 0 {
		seed = *randSeed
	}
	m, err := hmm.ReadFile(*randModel, hmm.Seed(seed))
	if err != nil {
		return err
	}

	var vocab *model.Vocab
	vocabFile := config.Vocab
	if len(*randVocab) > 0 {
		vocabFile = *randVocab
	}
	if len(vocabFile) > 0 {
		if vocab, err = model.ReadVocab(vocabFile); err != nil {
			return err
		}
		if vocab.Size() < m.NumSymbols() {
			glog.Warningf("vocabulary has %d tokens, model has %d symbols", vocab.Size(), m.NumSymbols())
		}
	}

	budget := config.HMM.SyllablesPerLine
	if *randBudget > 0 {
		budget = *randBudget
	}
	length := config.HMM.GeneratorMaxLen
	if *randLen > 0 {
		length = *randLen
	}

	var syl *Syllables
	if budget > 0 {
		if vocab == nil {
			return errors.New("syllable budget requires a vocabulary")
		}
		patFile := config.Hyphenation
		if len(*randPatterns) > 0 {
			patFile = *randPatterns
		}
		if len(patFile) == 0 {
			return errors.New("syllable budget requires hyphenation patterns, use --patterns or set hyphenation in config")
		}
		if syl, err = ReadSyllables(patFile); err != nil {
			return err
		}
	}

	for i := 0; i < *randNum; i++ {
		var x []int
		switch {
		case syl != nil && *randFirst >= 0:
			x, _, err = m.GenerateSeeded(budget, *randFirst, vocab.Token, syl.Count)
		case syl != nil:
			x, _, err = m.GenerateConstrained(budget, vocab.Token, syl.Count)
		default:
			x, _, err = m.Generate(length)
		}
		if err != nil {
			return errors.Wrapf(err, "sequence %d", i)
		}
		fmt.Fprintln(w, format(x, vocab))
	}
	return nil
}

func format(x []int, vocab *model.Vocab) string {

	s := make([]string, len(x))
	for i, k := range x {
		if vocab != nil {
			s[i] = vocab.Token(k)
		} else {
			s[i] = fmt.Sprint(k)
		}
	}
	return strings.Join(s, " ")
}
