package model

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Vocab maps observation indices to tokens.
type Vocab struct {
	Tokens []string `yaml:"tokens" json:"tokens"`
}

// ReadVocab reads a vocabulary from a yaml file:
//
//	tokens: [shall, i, compare, thee]
func ReadVocab(fn string) (*Vocab, error) {

	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	v := new(Vocab)
	if err := yaml.Unmarshal(data, v); err != nil {
		return nil, errors.Wrapf(err, "failed to parse vocabulary %s", fn)
	}
	return v, nil
}

// Token returns the token for index i or the empty string when i is out of range.
func (v *Vocab) Token(i int) string {
	if i < 0 || i >= len(v.Tokens) {
		return ""
	}
	return v.Tokens[i]
}

// Size returns the number of tokens.
func (v *Vocab) Size() int { return len(v.Tokens) }
