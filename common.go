// Copyright (c) 2014 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dhmm is a toolkit to train and use discrete hidden Markov models.
// The models are implemented in package model/hmm. This package holds the
// configuration shared by the command line tools.
package dhmm

import "github.com/golang/glog"

// Fatal logs err and exits if err is not nil.
func Fatal(err error) {
	if err != nil {
		glog.Fatal(err)
	}
}
