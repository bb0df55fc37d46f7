// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/speedata/hyphenation"
)

// Syllables counts syllables using TeX hyphenation patterns. A word with
// n break points has n+1 syllables.
type Syllables struct {
	lang *hyphenation.Lang
}

// NewSyllables loads hyphenation patterns from r.
func NewSyllables(r io.Reader) (*Syllables, error) {

	lang, err := hyphenation.New(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hyphenation patterns")
	}
	return &Syllables{lang: lang}, nil
}

// ReadSyllables loads a hyphenation pattern file, for example hyph-en-us.pat.txt.
func ReadSyllables(fn string) (*Syllables, error) {

	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewSyllables(f)
}

// Count returns the number of syllables in token. Returns -1 for tokens
// without letters or that don't fit in the remaining budget.
func (s *Syllables) Count(token string, remaining int) int {

	word := strings.ToLower(strings.TrimFunc(token, func(r rune) bool { return !unicode.IsLetter(r) }))
	if len(word) == 0 {
		return -1
	}
	n := len(s.lang.Hyphenate(word)) + 1
	if n > remaining {
		return -1
	}
	return n
}
