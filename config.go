// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dhmm

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the parameters used to build and train a model.
type Config struct {
	Model   string `yaml:"model" json:"model"`
	DataSet string `yaml:"data_set,omitempty" json:"data_set,omitempty"`
	Vocab   string `yaml:"vocab,omitempty" json:"vocab,omitempty"`
	// Hyphenation pattern file used to count syllables.
	Hyphenation string `yaml:"hyphenation,omitempty" json:"hyphenation,omitempty"`

	HMM HMM `yaml:"hmm,omitempty" json:"hmm,omitempty"`
}

// HMM holds the parameters of discrete hidden Markov models.
type HMM struct {
	NumStates        int   `yaml:"num_states,omitempty" json:"num_states,omitempty"`
	NumIterations    int   `yaml:"num_iterations,omitempty" json:"num_iterations,omitempty"`
	Supervised       bool  `yaml:"supervised,omitempty" json:"supervised,omitempty"`
	GeneratorSeed    int64 `yaml:"generator_seed,omitempty" json:"generator_seed,omitempty"`
	GeneratorMaxLen  int   `yaml:"generator_max_length,omitempty" json:"generator_max_length,omitempty"`
	SyllablesPerLine int   `yaml:"syllables_per_line,omitempty" json:"syllables_per_line,omitempty"`
}

// DefaultConfig returns the values used when a field is missing in the
// config file.
func DefaultConfig() *Config {
	return &Config{
		Model: "hmm",
		HMM: HMM{
			NumStates:       2,
			NumIterations:   10,
			GeneratorSeed:   33,
			GeneratorMaxLen: 100,
		},
	}
}

// ReadConfig reads a yaml config file. Missing fields keep their default values.
func ReadConfig(fn string) (*Config, error) {

	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", fn)
	}
	return config, nil
}
