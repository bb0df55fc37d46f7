// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Values is the exported form of a model used for serialization.
type Values struct {
	Name     string      `json:"name"`
	Seed     int64       `json:"seed"`
	Trans    [][]float64 `json:"trans"`
	Emission [][]float64 `json:"emission"`
}

// Values returns a copy of the model parameters.
func (m *Model) Values() *Values {
	return &Values{
		Name:     m.ModelName,
		Seed:     m.seed,
		Trans:    m.Trans(),
		Emission: m.Emission(),
	}
}

// Read unmarshals json data from an io.Reader into a model. Options are
// applied after the stored name and seed.
func Read(r io.Reader, options ...Option) (*Model, error) {

	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v := &Values{}
	if err := json.Unmarshal(b, v); err != nil {
		return nil, errors.Wrap(err, "failed to decode hmm")
	}
	opts := append([]Option{Name(v.Name), Seed(v.Seed)}, options...)
	return NewModel(v.Trans, v.Emission, opts...)
}

// ReadFile unmarshals json data from a file into a model.
func ReadFile(fn string, options ...Option) (*Model, error) {

	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	glog.Infof("Reading model from file %s.", fn)
	return Read(f, options...)
}

// Write writes the model to an io.Writer.
func (m *Model) Write(w io.Writer) error {

	b, err := json.Marshal(m.Values())
	if err != nil {
		return err
	}
	_, e := w.Write(b)
	return e
}

// WriteFile writes the model to file.
func (m *Model) WriteFile(fn string) error {

	e := os.MkdirAll(filepath.Dir(fn), 0755)
	if e != nil {
		return e
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := m.Write(f); err != nil {
		return err
	}
	glog.Infof("Wrote model \"%s\" to file %s.", m.Name(), fn)
	return nil
}
