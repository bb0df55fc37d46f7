// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {

	fn := filepath.Join(t.TempDir(), "config.yaml")
	t.Logf("Config File: %s.", fn)
	err := ioutil.WriteFile(fn, []byte(config), 0644)
	CheckError(t, err)

	// Read config.
	config, e := ReadConfig(fn)
	CheckError(t, e)

	// Check Config content.
	t.Logf("Config: %+v", config)

	if config.Model != "hmm" {
		t.Fatalf("Model is [%s]. Expected \"hmm\".", config.Model)
	}
	if config.DataSet != "lines.json" {
		t.Fatalf("DataSet is [%s]. Expected \"lines.json\".", config.DataSet)
	}
	if config.Vocab != "vocab.yaml" {
		t.Fatalf("Vocab is [%s]. Expected \"vocab.yaml\".", config.Vocab)
	}
	if config.Hyphenation != "hyph-en-us.pat.txt" {
		t.Fatalf("Hyphenation is [%s]. Expected \"hyph-en-us.pat.txt\".", config.Hyphenation)
	}
	if config.HMM.NumStates != 4 {
		t.Fatalf("NumStates is [%d]. Expected 4.", config.HMM.NumStates)
	}
	if config.HMM.NumIterations != 25 {
		t.Fatalf("NumIterations is [%d]. Expected 25.", config.HMM.NumIterations)
	}
	if !config.HMM.Supervised {
		t.Fatalf("Supervised is false.")
	}
	if config.HMM.SyllablesPerLine != 10 {
		t.Fatalf("SyllablesPerLine is [%d]. Expected 10.", config.HMM.SyllablesPerLine)
	}

	// Missing values use defaults.
	if config.HMM.GeneratorSeed != 33 {
		t.Fatalf("GeneratorSeed is [%d]. Expected 33.", config.HMM.GeneratorSeed)
	}
	if config.HMM.GeneratorMaxLen != 100 {
		t.Fatalf("GeneratorMaxLen is [%d]. Expected 100.", config.HMM.GeneratorMaxLen)
	}
}

func TestConfigBadFile(t *testing.T) {

	dir := t.TempDir()
	if _, err := ReadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	fn := filepath.Join(dir, "bad.yaml")
	CheckError(t, ioutil.WriteFile(fn, []byte("hmm: [1, 2"), 0644))
	if _, err := ReadConfig(fn); err == nil {
		t.Fatal("expected parse error")
	}
}

const config string = `
model: hmm
data_set: lines.json
vocab: vocab.yaml
hyphenation: hyph-en-us.pat.txt
hmm:
  num_states: 4
  num_iterations: 25
  supervised: true
  syllables_per_line: 10
`
